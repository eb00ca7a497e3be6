package models

import (
	"math"
	"time"

	"github.com/bhumika0029/polling-app/polls"
)

type OpenFeedRequest struct {
	Scope    string `json:"scope"`
	Username string `json:"username"`
}

type SelectChoiceRequest struct {
	ChoiceID polls.ID `json:"choiceId"`
}

type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Redirect tells the client to leave the feed, usually for the login page.
type Redirect struct {
	To      string `json:"to"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type ChoiceView struct {
	ID        polls.ID `json:"id"`
	Text      string   `json:"text"`
	VoteCount int64    `json:"voteCount"`
	Percent   float64  `json:"percent"`
	Selected  bool     `json:"selected,omitempty"`
	Winner    bool     `json:"winner,omitempty"`
}

type PollView struct {
	Index              int               `json:"index"`
	ID                 polls.ID          `json:"id"`
	Question           string            `json:"question"`
	CreatedBy          polls.UserSummary `json:"createdBy"`
	CreationDateTime   time.Time         `json:"creationDateTime"`
	ExpirationDateTime time.Time         `json:"expirationDateTime"`
	TotalVotes         int64             `json:"totalVotes"`
	SelectedChoice     polls.ID          `json:"selectedChoice,omitempty"`
	TentativeChoice    polls.ID          `json:"tentativeChoice,omitempty"`
	Mode               polls.Mode        `json:"mode"`
	Status             string            `json:"status"`
	TimeRemaining      string            `json:"timeRemaining"`
	Winner             polls.ID          `json:"winner,omitempty"`
	CanVote            bool              `json:"canVote"`
	Choices            []ChoiceView      `json:"choices"`
}

type FeedResponse struct {
	ID       string     `json:"id"`
	Scope    string     `json:"scope"`
	Username string     `json:"username,omitempty"`
	Page     int        `json:"page"`
	HasMore  bool       `json:"hasMore"`
	Loading  bool       `json:"loading"`
	Polls    []PollView `json:"polls"`
	Notices  []Notice   `json:"notices,omitempty"`
	Redirect *Redirect  `json:"redirect,omitempty"`
}

func TransformFeedState(id string, state polls.State, resolver polls.Resolver, now time.Time) FeedResponse {
	res := FeedResponse{
		ID:       id,
		Scope:    string(state.Scope.Kind),
		Username: state.Scope.Username,
		Page:     state.PageCursor,
		HasMore:  state.HasMore,
		Loading:  state.Loading,
		Polls:    make([]PollView, 0, len(state.Items)),
	}

	for i := range state.Items {
		p := &state.Items[i]
		r := resolver.Resolve(p, now)

		view := PollView{
			Index:              i,
			ID:                 p.ID,
			Question:           p.Question,
			CreatedBy:          p.CreatedBy,
			CreationDateTime:   p.CreationDateTime,
			ExpirationDateTime: p.ExpirationDateTime,
			TotalVotes:         p.TotalVotes,
			SelectedChoice:     p.SelectedChoice,
			TentativeChoice:    state.Selections[i],
			Mode:               r.Mode,
			Status:             r.Status,
			TimeRemaining:      r.TimeLabel,
			Winner:             r.WinnerID,
			CanVote:            r.Mode == polls.ModeActive && state.Selections[i] != "",
			Choices:            make([]ChoiceView, 0, len(r.Choices)),
		}
		for _, c := range r.Choices {
			view.Choices = append(view.Choices, ChoiceView{
				ID:        c.ID,
				Text:      c.Text,
				VoteCount: c.VoteCount,
				Percent:   math.Round(c.Percent*100) / 100,
				Selected:  c.Selected,
				Winner:    c.Winner,
			})
		}
		res.Polls = append(res.Polls, view)
	}
	return res
}
