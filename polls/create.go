package polls

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bhumika0029/polling-app/logging"
)

const (
	QuestionMaxLength = 140
	ChoiceMaxLength   = 40
	MaxPollDays       = 7
	MaxPollHours      = 23

	loginToCreateMessage = "Please login to create a poll."
	pollCreatedMessage   = "Poll created successfully!"
)

type ChoiceText struct {
	Text string `json:"text"`
}

// PollLength is how long a new poll stays open.
type PollLength struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

// NewPoll is a poll as submitted by its author.
type NewPoll struct {
	Question   string       `json:"question"`
	Choices    []ChoiceText `json:"choices"`
	PollLength PollLength   `json:"pollLength"`
}

// Validate checks the bounds the polls API enforces, so a bad poll is
// rejected before any request is made.
func (p *NewPoll) Validate(maxChoices int) error {
	if maxChoices <= 0 {
		maxChoices = DefaultMaxChoices
	}

	switch n := utf8.RuneCountInString(p.Question); {
	case n == 0:
		return fmt.Errorf("%w: question is required", ErrInvalidPoll)
	case n > QuestionMaxLength:
		return fmt.Errorf("%w: question is longer than %d characters", ErrInvalidPoll, QuestionMaxLength)
	}

	if len(p.Choices) < 2 || len(p.Choices) > maxChoices {
		return fmt.Errorf("%w: %d choices, want 2..%d", ErrInvalidPoll, len(p.Choices), maxChoices)
	}
	for i, c := range p.Choices {
		switch n := utf8.RuneCountInString(c.Text); {
		case n == 0:
			return fmt.Errorf("%w: choice %d is empty", ErrInvalidPoll, i+1)
		case n > ChoiceMaxLength:
			return fmt.Errorf("%w: choice %d is longer than %d characters", ErrInvalidPoll, i+1, ChoiceMaxLength)
		}
	}

	l := p.PollLength
	if l.Days < 0 || l.Days > MaxPollDays || l.Hours < 0 || l.Hours > MaxPollHours {
		return fmt.Errorf("%w: poll length must be 0..%d days and 0..%d hours", ErrInvalidPoll, MaxPollDays, MaxPollHours)
	}
	if l.Days == 0 && l.Hours == 0 {
		return fmt.Errorf("%w: poll length must be positive", ErrInvalidPoll)
	}
	return nil
}

// CreateResult is the polls API acknowledgement for a new poll.
type CreateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PollCreator sends a new poll upstream. A rejected session is reported as
// ErrUnauthorized.
type PollCreator interface {
	CreatePoll(ctx context.Context, token string, poll NewPoll) (*CreateResult, error)
}

// Author creates polls on behalf of a session. Like Voter it keeps no state.
type Author struct {
	creator    PollCreator
	listener   SessionListener
	notifier   Notifier
	maxChoices int
}

func NewAuthor(creator PollCreator, listener SessionListener, notifier Notifier, maxChoices int) *Author {
	if maxChoices <= 0 {
		maxChoices = DefaultMaxChoices
	}
	return &Author{
		creator:    creator,
		listener:   listener,
		notifier:   notifier,
		maxChoices: maxChoices,
	}
}

func (a *Author) CreatePoll(ctx context.Context, session Session, poll NewPoll) (*CreateResult, error) {
	if !session.Authenticated() {
		a.listener.LoginRequired(LoginPath, loginToCreateMessage)
		return nil, ErrLoginRequired
	}
	if err := poll.Validate(a.maxChoices); err != nil {
		logging.Log.Debugf("POLL: rejecting poll from %s: %v", session.Username, err)
		return nil, err
	}

	res, err := a.creator.CreatePoll(ctx, session.AccessToken, poll)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			logging.Log.Warnf("POLL: session for %s rejected while creating a poll", session.Username)
			a.listener.SessionExpired(LoginPath, loggedOutMessage)
			return nil, err
		}
		logging.Log.Errorf("POLL: failed to create poll for %s: %v", session.Username, err)
		a.notifier.Notify(NoticeError, userMessage(err))
		return nil, fmt.Errorf("create poll: %w", err)
	}

	a.notifier.Notify(NoticeSuccess, pollCreatedMessage)
	logging.Log.Infof("POLL: %s created a poll with %d choices", session.Username, len(poll.Choices))
	return res, nil
}
