package polls

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/sirupsen/logrus"
)

func init() {
	logging.Log = logrus.New()
	logging.Log.SetLevel(logrus.PanicLevel)
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func makePoll(id string, votes ...int64) PollRecord {
	if len(votes) == 0 {
		votes = []int64{0, 0}
	}
	p := PollRecord{
		ID:                 ID(id),
		Question:           "Question " + id,
		CreatedBy:          UserSummary{Username: "jdoe", Name: "Jane Doe"},
		CreationDateTime:   testNow.Add(-time.Hour),
		ExpirationDateTime: testNow.Add(24 * time.Hour),
	}
	for i, v := range votes {
		p.Choices = append(p.Choices, Choice{ID: ID(fmt.Sprintf("%s-c%d", id, i+1)), Text: fmt.Sprintf("Choice %d", i+1), VoteCount: v})
		p.TotalVotes += v
	}
	return p
}

type fetchCall struct {
	Token string
	Scope Scope
	Page  int
	Size  int
}

type fakeSource struct {
	mu    sync.Mutex
	pages map[int]*Page
	errs  map[int]error
	calls []fetchCall
	// gate, when set, blocks FetchPolls for that page until closed.
	gate map[int]chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{pages: map[int]*Page{}, errs: map[int]error{}, gate: map[int]chan struct{}{}}
}

func (s *fakeSource) setPage(page int, last bool, recs ...PollRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[page] = &Page{Content: recs, Page: page, Size: len(recs), Last: last}
	delete(s.errs, page)
}

func (s *fakeSource) failPage(page int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[page] = err
}

func (s *fakeSource) FetchPolls(ctx context.Context, token string, scope Scope, page, size int) (*Page, error) {
	s.mu.Lock()
	s.calls = append(s.calls, fetchCall{Token: token, Scope: scope, Page: page, Size: size})
	gate := s.gate[page]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[page]; err != nil {
		return nil, err
	}
	p, ok := s.pages[page]
	if !ok {
		return nil, errors.New("no such page")
	}
	cp := *p
	return &cp, nil
}

func (s *fakeSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type fakeSubmitter struct {
	response *PollRecord
	err      error
	requests []VoteRequest
	tokens   []string
}

func (s *fakeSubmitter) CastVote(ctx context.Context, token string, req VoteRequest) (*PollRecord, error) {
	s.requests = append(s.requests, req)
	s.tokens = append(s.tokens, token)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type signal struct {
	Kind       string
	RedirectTo string
	Message    string
}

type recorder struct {
	signals []signal
	notices []signal
}

func (r *recorder) LoginRequired(redirectTo, message string) {
	r.signals = append(r.signals, signal{Kind: "login", RedirectTo: redirectTo, Message: message})
}

func (r *recorder) SessionExpired(redirectTo, message string) {
	r.signals = append(r.signals, signal{Kind: "expired", RedirectTo: redirectTo, Message: message})
}

func (r *recorder) Notify(kind NoticeKind, message string) {
	r.notices = append(r.notices, signal{Kind: string(kind), Message: message})
}

type messageError struct{ msg string }

func (e *messageError) Error() string       { return "upstream: " + e.msg }
func (e *messageError) UserMessage() string { return e.msg }
