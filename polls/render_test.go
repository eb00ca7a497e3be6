package polls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("Happy path - open poll without a vote is active", func(t *testing.T) {
		p := makePoll("p1", 3, 1)
		r := Resolver{}.Resolve(&p, testNow)

		assert.Equal(t, ModeActive, r.Mode)
		assert.Equal(t, StatusActive, r.Status)
		assert.Equal(t, "1 days left", r.TimeLabel)
		assert.Empty(t, r.WinnerID)
		for _, c := range r.Choices {
			assert.Zero(t, c.Percent)
			assert.False(t, c.Winner)
		}
	})

	t.Run("Happy path - voted open poll shows results without a winner", func(t *testing.T) {
		p := makePoll("p1", 1, 3)
		p.SelectedChoice = "p1-c1"
		r := Resolver{}.Resolve(&p, testNow)

		assert.Equal(t, ModeResults, r.Mode)
		assert.Empty(t, r.WinnerID)
		assert.True(t, r.Choices[0].Selected)
		assert.False(t, r.Choices[1].Selected)
		assert.Equal(t, 25.0, r.Choices[0].Percent)
		assert.Equal(t, 75.0, r.Choices[1].Percent)
	})

	t.Run("Happy path - voted open poll shows the leader when configured", func(t *testing.T) {
		p := makePoll("p1", 1, 3)
		p.SelectedChoice = "p1-c1"
		r := Resolver{WinnerBeforeExpiry: true}.Resolve(&p, testNow)

		assert.Equal(t, ID("p1-c2"), r.WinnerID)
		assert.True(t, r.Choices[1].Winner)
	})

	t.Run("Happy path - deadline passed switches to results with a winner", func(t *testing.T) {
		p := makePoll("p1", 2, 5, 5)
		p.ExpirationDateTime = testNow.Add(-time.Second)
		r := Resolver{}.Resolve(&p, testNow)

		assert.Equal(t, ModeResults, r.Mode)
		assert.Equal(t, StatusClosed, r.Status)
		assert.Equal(t, "Final results", r.TimeLabel)
		assert.True(t, r.Remaining.Expired)
		assert.Equal(t, ID("p1-c2"), r.WinnerID, "first choice wins a tie")
		assert.False(t, r.Choices[2].Winner)
	})

	t.Run("Happy path - server expired flag is honoured", func(t *testing.T) {
		p := makePoll("p1", 1, 0)
		p.Expired = true
		r := Resolver{}.Resolve(&p, testNow)

		assert.Equal(t, ModeResults, r.Mode)
		assert.Equal(t, ID("p1-c1"), r.WinnerID)
	})

	t.Run("Happy path - no votes gives zero percentages", func(t *testing.T) {
		p := makePoll("p1", 0, 0, 0)
		p.ExpirationDateTime = testNow
		r := Resolver{}.Resolve(&p, testNow)

		for _, c := range r.Choices {
			assert.Zero(t, c.Percent)
		}
		assert.Equal(t, ID("p1-c1"), r.WinnerID)
	})
}

func TestWinningChoice(t *testing.T) {
	_, ok := WinningChoice(nil)
	assert.False(t, ok)

	w, ok := WinningChoice([]Choice{{ID: "a", VoteCount: 1}, {ID: "b", VoteCount: 4}, {ID: "c", VoteCount: 4}})
	assert.True(t, ok)
	assert.Equal(t, ID("b"), w.ID)
}

func TestPercentage(t *testing.T) {
	assert.Zero(t, Percentage(Choice{VoteCount: 0}, 0))
	assert.InDelta(t, 33.333, Percentage(Choice{VoteCount: 1}, 3), 0.001)
}
