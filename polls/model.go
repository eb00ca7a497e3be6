package polls

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ID is an opaque identifier for polls and choices. The upstream API sends
// numeric ids, other deployments send strings; both decode into ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type Choice struct {
	ID        ID     `json:"id"`
	Text      string `json:"text"`
	VoteCount int64  `json:"voteCount"`
}

type UserSummary struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// PollRecord is one poll as the server last reported it. Records are never
// mutated in place; a vote response replaces the whole record.
type PollRecord struct {
	ID                 ID          `json:"id"`
	Question           string      `json:"question"`
	Choices            []Choice    `json:"choices"`
	CreatedBy          UserSummary `json:"createdBy"`
	CreationDateTime   time.Time   `json:"creationDateTime"`
	ExpirationDateTime time.Time   `json:"expirationDateTime"`
	Expired            bool        `json:"expired"`
	SelectedChoice     ID          `json:"selectedChoice,omitempty"`
	TotalVotes         int64       `json:"totalVotes"`
}

// HasVoted reports whether the server recorded a vote by the viewer.
func (p *PollRecord) HasVoted() bool {
	return p.SelectedChoice != ""
}

// IsExpired reports whether the poll is closed at now, either because the
// server says so or because its deadline has passed.
func (p *PollRecord) IsExpired(now time.Time) bool {
	return p.Expired || !now.Before(p.ExpirationDateTime)
}

// Validate checks the structural invariants of a record received from the
// server. maxChoices <= 0 disables the upper bound.
func (p *PollRecord) Validate(maxChoices int) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if len(p.Choices) < 2 {
		return fmt.Errorf("%w: poll %s has %d choices", ErrInvalidRecord, p.ID, len(p.Choices))
	}
	if maxChoices > 0 && len(p.Choices) > maxChoices {
		return fmt.Errorf("%w: poll %s has %d choices, max is %d", ErrInvalidRecord, p.ID, len(p.Choices), maxChoices)
	}

	var sum int64
	for _, c := range p.Choices {
		if c.VoteCount < 0 {
			return fmt.Errorf("%w: poll %s choice %s has negative votes", ErrInvalidRecord, p.ID, c.ID)
		}
		sum += c.VoteCount
	}
	if sum != p.TotalVotes {
		return fmt.Errorf("%w: poll %s total %d does not match choice sum %d", ErrInvalidRecord, p.ID, p.TotalVotes, sum)
	}
	return nil
}

// Page is one page of the upstream poll listing.
type Page struct {
	Content       []PollRecord `json:"content"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Last          bool         `json:"last"`
}

type VoteRequest struct {
	PollID   ID `json:"-"`
	ChoiceID ID `json:"choiceId"`
}

type ScopeKind string

const (
	ScopeGlobal    ScopeKind = "global"
	ScopeCreatedBy ScopeKind = "created"
	ScopeVotedBy   ScopeKind = "voted"
)

// Scope selects which listing a feed pages through.
type Scope struct {
	Kind     ScopeKind
	Username string
}

func GlobalScope() Scope { return Scope{Kind: ScopeGlobal} }

func CreatedBy(username string) Scope { return Scope{Kind: ScopeCreatedBy, Username: username} }

func VotedBy(username string) Scope { return Scope{Kind: ScopeVotedBy, Username: username} }

func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeGlobal:
		return nil
	case ScopeCreatedBy, ScopeVotedBy:
		if s.Username == "" {
			return fmt.Errorf("%w: %s scope needs a username", ErrInvalidScope, s.Kind)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidScope, s.Kind)
	}
}

func (s Scope) String() string {
	if s.Username == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + s.Username
}
