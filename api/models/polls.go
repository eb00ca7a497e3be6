package models

import "github.com/bhumika0029/polling-app/polls"

type CreatePollRequest struct {
	Question   string             `json:"question"`
	Choices    []polls.ChoiceText `json:"choices"`
	PollLength polls.PollLength   `json:"pollLength"`
}

func (r *CreatePollRequest) ToNewPoll() polls.NewPoll {
	return polls.NewPoll{
		Question:   r.Question,
		Choices:    r.Choices,
		PollLength: r.PollLength,
	}
}

type CreatePollResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Notices  []Notice  `json:"notices,omitempty"`
	Redirect *Redirect `json:"redirect,omitempty"`
}
