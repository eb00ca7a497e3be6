package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	testutils "github.com/bhumika0029/polling-app/api/controllers/testing"
	"github.com/bhumika0029/polling-app/api/models"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePollRequest() models.CreatePollRequest {
	return models.CreatePollRequest{
		Question:   "Lunch?",
		Choices:    []polls.ChoiceText{{Text: "Pizza"}, {Text: "Sushi"}},
		PollLength: polls.PollLength{Days: 1, Hours: 12},
	}
}

func decodeCreatePoll(t *testing.T, body []byte) models.CreatePollResponse {
	t.Helper()
	var res models.CreatePollResponse
	require.NoError(t, json.Unmarshal(body, &res), "Should unmarshal create poll response")
	return res
}

func TestCreatePoll(t *testing.T) {
	t.Run("Happy path - poll is forwarded upstream", func(t *testing.T) {
		env := setupTestFeedController(t)
		headers := env.signIn(t, "tok")

		w := testutils.PerformRequest(env.router, http.MethodPost, "/api/polls", validCreatePollRequest(), headers)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		res := decodeCreatePoll(t, w.Body.Bytes())
		assert.True(t, res.Success)
		assert.Equal(t, []models.Notice{{Kind: "success", Message: "Poll created successfully!"}}, res.Notices)

		req := validCreatePollRequest()
		assert.Equal(t, []polls.NewPoll{req.ToNewPoll()}, env.api.Created)
		assert.Equal(t, "tok", env.api.LastToken)
	})

	t.Run("Unhappy path - anonymous author is redirected to login", func(t *testing.T) {
		env := setupTestFeedController(t)

		w := testutils.PerformRequest(env.router, http.MethodPost, "/api/polls", validCreatePollRequest(), nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		res := decodeCreatePoll(t, w.Body.Bytes())
		require.NotNil(t, res.Redirect)
		assert.Equal(t, models.Redirect{To: "/login", Reason: "login_required", Message: "Please login to create a poll."}, *res.Redirect)
		assert.Empty(t, env.api.Created)
	})

	t.Run("Unhappy path - invalid polls are rejected before any request", func(t *testing.T) {
		env := setupTestFeedController(t)
		headers := env.signIn(t, "tok")

		invalid := map[string]func(r *models.CreatePollRequest){
			"question too long": func(r *models.CreatePollRequest) { r.Question = strings.Repeat("q", polls.QuestionMaxLength+1) },
			"single choice":     func(r *models.CreatePollRequest) { r.Choices = r.Choices[:1] },
			"choice too long":   func(r *models.CreatePollRequest) { r.Choices[0].Text = strings.Repeat("c", polls.ChoiceMaxLength+1) },
			"zero length":       func(r *models.CreatePollRequest) { r.PollLength = polls.PollLength{} },
		}
		for name, mutate := range invalid {
			req := validCreatePollRequest()
			mutate(&req)
			w := testutils.PerformRequest(env.router, http.MethodPost, "/api/polls", req, headers)
			assert.Equal(t, http.StatusBadRequest, w.Code, name)
		}
		assert.Empty(t, env.api.Created)
	})

	t.Run("Unhappy path - rejected token logs the author out", func(t *testing.T) {
		env := setupTestFeedController(t)
		headers := env.signIn(t, "tok")
		env.api.CreateErr = &upstream.APIError{Status: http.StatusUnauthorized}

		w := testutils.PerformRequest(env.router, http.MethodPost, "/api/polls", validCreatePollRequest(), headers)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		res := decodeCreatePoll(t, w.Body.Bytes())
		require.NotNil(t, res.Redirect)
		assert.Equal(t, "session_expired", res.Redirect.Reason)
		assert.Equal(t, []string{headers[transport.SessionHeader]}, env.sessions.Deleted)
	})

	t.Run("Unhappy path - other upstream failure carries the server message", func(t *testing.T) {
		env := setupTestFeedController(t)
		headers := env.signIn(t, "tok")
		env.api.CreateErr = &upstream.APIError{Status: http.StatusBadRequest, Message: "Poll length is invalid"}

		w := testutils.PerformRequest(env.router, http.MethodPost, "/api/polls", validCreatePollRequest(), headers)
		require.Equal(t, http.StatusBadGateway, w.Code)

		res := decodeCreatePoll(t, w.Body.Bytes())
		assert.False(t, res.Success)
		assert.Equal(t, []models.Notice{{Kind: "error", Message: "Poll length is invalid"}}, res.Notices)
	})
}
