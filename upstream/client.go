// Package upstream talks to the polls REST API that owns poll data.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
)

// APIError is a non-2xx answer from the polls API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("polls api returned %d", e.Status)
	}
	return fmt.Sprintf("polls api returned %d: %s", e.Status, e.Message)
}

// Is lets callers match a 401 with errors.Is(err, polls.ErrUnauthorized).
func (e *APIError) Is(target error) bool {
	return target == polls.ErrUnauthorized && e.Status == http.StatusUnauthorized
}

func (e *APIError) UserMessage() string {
	return e.Message
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client implements polls.PollSource, polls.VoteSubmitter and
// polls.PollCreator over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse polls api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("polls api url %q must be absolute", baseURL)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) FetchPolls(ctx context.Context, token string, scope polls.Scope, page, size int) (*polls.Page, error) {
	var path string
	switch scope.Kind {
	case polls.ScopeGlobal:
		path = "/api/polls"
	case polls.ScopeCreatedBy:
		path = "/api/users/" + url.PathEscape(scope.Username) + "/polls"
	case polls.ScopeVotedBy:
		path = "/api/users/" + url.PathEscape(scope.Username) + "/votes"
	default:
		return nil, fmt.Errorf("%w: %q", polls.ErrInvalidScope, scope.Kind)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out polls.Page
	if err := c.do(ctx, http.MethodGet, path, q, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CastVote(ctx context.Context, token string, req polls.VoteRequest) (*polls.PollRecord, error) {
	path := "/api/polls/" + url.PathEscape(string(req.PollID)) + "/votes"

	var out polls.PollRecord
	if err := c.do(ctx, http.MethodPost, path, nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePoll posts a new poll. The polls API answers with an acknowledgement,
// not the created record.
func (c *Client) CreatePoll(ctx context.Context, token string, poll polls.NewPoll) (*polls.CreateResult, error) {
	var out polls.CreateResult
	if err := c.do(ctx, http.MethodPost, "/api/polls", nil, token, poll, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one request. path must already be escaped segment by segment.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		logging.Log.Warnf("UPSTREAM: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		logging.Log.Warnf("UPSTREAM: %s %s returned %d", method, path, res.StatusCode)
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
