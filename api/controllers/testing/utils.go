package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"

	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
)

// PerformRequest Helper for performing requests in tests.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			panic("failed to marshal request body: " + err.Error())
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

// MemorySessionStorage is a SessionStorage kept in a map.
type MemorySessionStorage struct {
	mu       sync.Mutex
	Sessions map[string]*storage.Session
	Deleted  []string
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{Sessions: make(map[string]*storage.Session)}
}

func (m *MemorySessionStorage) Get(ctx context.Context, id string) (*storage.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemorySessionStorage) Create(ctx context.Context, session *storage.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Sessions[session.ID]; ok {
		return storage.ErrItemWithIDAlreadyExists
	}
	cp := *session
	m.Sessions[session.ID] = &cp
	return nil
}

func (m *MemorySessionStorage) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Sessions, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// FakePollsAPI serves canned pages, vote answers and poll acknowledgements.
type FakePollsAPI struct {
	mu        sync.Mutex
	Pages     map[int]*polls.Page
	FetchErr  error
	Vote      *polls.PollRecord
	VoteErr   error
	Votes     []polls.VoteRequest
	Created   []polls.NewPoll
	CreateErr error
	Fetches   []int
	LastToken string
}

func NewFakePollsAPI() *FakePollsAPI {
	return &FakePollsAPI{Pages: make(map[int]*polls.Page)}
}

func (f *FakePollsAPI) FetchPolls(ctx context.Context, token string, scope polls.Scope, page, size int) (*polls.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Fetches = append(f.Fetches, page)
	f.LastToken = token
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	p, ok := f.Pages[page]
	if !ok {
		return &polls.Page{Page: page, Last: true}, nil
	}
	cp := *p
	return &cp, nil
}

func (f *FakePollsAPI) CastVote(ctx context.Context, token string, req polls.VoteRequest) (*polls.PollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Votes = append(f.Votes, req)
	f.LastToken = token
	if f.VoteErr != nil {
		return nil, f.VoteErr
	}
	return f.Vote, nil
}

func (f *FakePollsAPI) CreatePoll(ctx context.Context, token string, poll polls.NewPoll) (*polls.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, poll)
	f.LastToken = token
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &polls.CreateResult{Success: true, Message: "Poll Created Successfully"}, nil
}
