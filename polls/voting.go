package polls

import (
	"context"
	"errors"
	"fmt"

	"github.com/bhumika0029/polling-app/logging"
)

const (
	LoginPath = "/login"

	loginToVoteMessage    = "Please login to vote."
	loggedOutMessage      = "You have been logged out."
	voteCastMessage       = "Vote cast successfully!"
	genericFailureMessage = "Sorry! Something went wrong."
)

// VoteSubmitter sends a vote upstream and returns the poll as it stands after
// the vote. A rejected session is reported as ErrUnauthorized.
type VoteSubmitter interface {
	CastVote(ctx context.Context, token string, req VoteRequest) (*PollRecord, error)
}

// Session is the viewer on whose behalf an operation runs.
type Session struct {
	Username    string
	Name        string
	AccessToken string
}

func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// SessionListener is told when the viewer has to (re)authenticate.
type SessionListener interface {
	LoginRequired(redirectTo, message string)
	SessionExpired(redirectTo, message string)
}

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notifier shows a fire-and-forget message to the viewer.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// UserMessager is implemented by errors that carry a message meant for the
// viewer.
type UserMessager interface {
	UserMessage() string
}

// Voter submits votes for a feed. It keeps no state between calls.
type Voter struct {
	submitter  VoteSubmitter
	listener   SessionListener
	notifier   Notifier
	maxChoices int
}

func NewVoter(submitter VoteSubmitter, listener SessionListener, notifier Notifier, maxChoices int) *Voter {
	if maxChoices <= 0 {
		maxChoices = DefaultMaxChoices
	}
	return &Voter{
		submitter:  submitter,
		listener:   listener,
		notifier:   notifier,
		maxChoices: maxChoices,
	}
}

// SubmitVote casts the tentative selection at index. On success the poll's
// record is replaced by the server's copy; selections are left alone. On any
// failure the feed is unchanged.
func (v *Voter) SubmitVote(ctx context.Context, session Session, feed *Feed, index int) error {
	if !session.Authenticated() {
		v.listener.LoginRequired(LoginPath, loginToVoteMessage)
		return ErrLoginRequired
	}

	pollID, choiceID, err := feed.pendingVote(index)
	if err != nil {
		logging.Log.Debugf("VOTE: not submitting index %d: %v", index, err)
		return err
	}

	rec, err := v.submitter.CastVote(ctx, session.AccessToken, VoteRequest{PollID: pollID, ChoiceID: choiceID})
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			logging.Log.Warnf("VOTE: session for %s rejected while voting on poll %s", session.Username, pollID)
			v.listener.SessionExpired(LoginPath, loggedOutMessage)
			return err
		}
		logging.Log.Errorf("VOTE: failed to cast vote on poll %s: %v", pollID, err)
		v.notifier.Notify(NoticeError, userMessage(err))
		return fmt.Errorf("cast vote on poll %s: %w", pollID, err)
	}

	if rec == nil {
		err = fmt.Errorf("%w: empty vote response", ErrInvalidRecord)
	} else if rec.ID != pollID {
		err = fmt.Errorf("%w: vote on poll %s answered with poll %s", ErrInvalidRecord, pollID, rec.ID)
	} else {
		err = rec.Validate(v.maxChoices)
	}
	if err != nil {
		logging.Log.Errorf("VOTE: rejecting vote response: %v", err)
		v.notifier.Notify(NoticeError, genericFailureMessage)
		return err
	}

	if !feed.replace(*rec) {
		logging.Log.Infof("VOTE: poll %s left the feed before the vote completed", pollID)
	}
	v.notifier.Notify(NoticeSuccess, voteCastMessage)
	logging.Log.Infof("VOTE: %s voted %s on poll %s", session.Username, choiceID, pollID)
	return nil
}

func userMessage(err error) string {
	var m UserMessager
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage()
	}
	return genericFailureMessage
}
