package models

import (
	"testing"
	"time"

	"github.com/bhumika0029/polling-app/polls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformFeedState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	open := polls.PollRecord{
		ID:                 "1",
		Question:           "Lunch?",
		Choices:            []polls.Choice{{ID: "a", Text: "Pizza"}, {ID: "b", Text: "Sushi"}},
		ExpirationDateTime: now.Add(3 * time.Hour),
	}
	closed := polls.PollRecord{
		ID:                 "2",
		Question:           "Dinner?",
		Choices:            []polls.Choice{{ID: "c", Text: "Tacos", VoteCount: 1}, {ID: "d", Text: "Curry", VoteCount: 2}},
		ExpirationDateTime: now.Add(-time.Hour),
		SelectedChoice:     "c",
		TotalVotes:         3,
	}
	state := polls.State{
		Scope:      polls.CreatedBy("jdoe"),
		Items:      []polls.PollRecord{open, closed},
		Selections: []polls.ID{"b", ""},
		PageCursor: 0,
		HasMore:    true,
	}

	res := TransformFeedState("feed1", state, polls.Resolver{}, now)

	assert.Equal(t, "created", res.Scope)
	assert.Equal(t, "jdoe", res.Username)
	assert.True(t, res.HasMore)
	require.Len(t, res.Polls, 2)

	assert.Equal(t, polls.ModeActive, res.Polls[0].Mode)
	assert.Equal(t, "3 hours left", res.Polls[0].TimeRemaining)
	assert.Equal(t, polls.ID("b"), res.Polls[0].TentativeChoice)
	assert.True(t, res.Polls[0].CanVote)

	assert.Equal(t, polls.ModeResults, res.Polls[1].Mode)
	assert.Equal(t, "Closed", res.Polls[1].Status)
	assert.Equal(t, polls.ID("d"), res.Polls[1].Winner)
	assert.False(t, res.Polls[1].CanVote)
	assert.Equal(t, 33.33, res.Polls[1].Choices[0].Percent)
	assert.True(t, res.Polls[1].Choices[0].Selected)
	assert.True(t, res.Polls[1].Choices[1].Winner)
}
