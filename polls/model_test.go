package polls

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollRecordDecode(t *testing.T) {
	t.Run("Happy path - numeric ids and null selection", func(t *testing.T) {
		body := `{
			"id": 12,
			"question": "Tabs or spaces?",
			"choices": [{"id": 1, "text": "Tabs", "voteCount": 2}, {"id": 2, "text": "Spaces", "voteCount": 3}],
			"createdBy": {"id": 4, "username": "jdoe", "name": "Jane Doe"},
			"creationDateTime": "2026-03-01T10:00:00Z",
			"expirationDateTime": "2026-03-02T10:00:00Z",
			"selectedChoice": null,
			"totalVotes": 5,
			"expired": false
		}`

		var p PollRecord
		require.NoError(t, json.Unmarshal([]byte(body), &p))
		assert.Equal(t, ID("12"), p.ID)
		assert.Equal(t, ID("2"), p.Choices[1].ID)
		assert.Equal(t, "jdoe", p.CreatedBy.Username)
		assert.False(t, p.HasVoted())
		assert.NoError(t, p.Validate(6))
	})

	t.Run("Happy path - string ids and a recorded vote", func(t *testing.T) {
		var p PollRecord
		require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","selectedChoice":"c2"}`), &p))
		assert.Equal(t, ID("p1"), p.ID)
		assert.True(t, p.HasVoted())
	})

	t.Run("Unhappy path - id of the wrong type", func(t *testing.T) {
		var p PollRecord
		assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &p))
	})
}

func TestPollRecordValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *PollRecord)
		ok     bool
	}{
		{name: "valid", mutate: func(p *PollRecord) {}, ok: true},
		{name: "missing id", mutate: func(p *PollRecord) { p.ID = "" }},
		{name: "single choice", mutate: func(p *PollRecord) { p.Choices = p.Choices[:1]; p.TotalVotes = p.Choices[0].VoteCount }},
		{name: "too many choices", mutate: func(p *PollRecord) {
			for i := 0; i < 5; i++ {
				p.Choices = append(p.Choices, Choice{ID: ID(fmt.Sprintf("extra-%d", i))})
			}
		}},
		{name: "total mismatch", mutate: func(p *PollRecord) { p.TotalVotes++ }},
		{name: "negative count", mutate: func(p *PollRecord) { p.Choices[0].VoteCount = -1; p.TotalVotes = p.Choices[1].VoteCount - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := makePoll("p1", 2, 3)
			tt.mutate(&p)
			err := p.Validate(6)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidRecord), "expected ErrInvalidRecord, got %v", err)
		})
	}
}

func TestScopeValidate(t *testing.T) {
	assert.NoError(t, GlobalScope().Validate())
	assert.NoError(t, CreatedBy("jdoe").Validate())
	assert.ErrorIs(t, VotedBy("").Validate(), ErrInvalidScope)
	assert.ErrorIs(t, Scope{Kind: "everything"}.Validate(), ErrInvalidScope)
	assert.Equal(t, "voted:jdoe", VotedBy("jdoe").String())
}
