package polls

import "time"

type Mode string

const (
	ModeActive  Mode = "active"
	ModeResults Mode = "results"
)

const (
	StatusActive = "Active"
	StatusClosed = "Closed"

	finalResultsLabel = "Final results"
)

type ChoiceRendering struct {
	Choice
	Percent  float64
	Selected bool
	Winner   bool
}

// Rendering describes how one poll should be presented at a point in time.
type Rendering struct {
	Mode      Mode
	Status    string
	Expired   bool
	Remaining TimeRemaining
	TimeLabel string
	WinnerID  ID
	Choices   []ChoiceRendering
}

// Resolver decides between voting controls and results for a poll.
// WinnerBeforeExpiry highlights the current leader to a viewer who has voted
// on a poll that is still open; otherwise the winner is only marked once the
// poll has closed.
type Resolver struct {
	WinnerBeforeExpiry bool
}

func (r Resolver) Resolve(p *PollRecord, now time.Time) Rendering {
	expired := p.IsExpired(now)
	out := Rendering{
		Mode:      ModeActive,
		Status:    StatusActive,
		Expired:   expired,
		Remaining: Remaining(p.ExpirationDateTime, now),
		Choices:   make([]ChoiceRendering, len(p.Choices)),
	}
	out.TimeLabel = out.Remaining.String()
	if expired {
		out.Status = StatusClosed
		out.TimeLabel = finalResultsLabel
	}

	if !p.HasVoted() && !expired {
		for i, c := range p.Choices {
			out.Choices[i] = ChoiceRendering{Choice: c}
		}
		return out
	}

	out.Mode = ModeResults
	if expired || r.WinnerBeforeExpiry {
		if w, ok := WinningChoice(p.Choices); ok {
			out.WinnerID = w.ID
		}
	}
	for i, c := range p.Choices {
		out.Choices[i] = ChoiceRendering{
			Choice:   c,
			Percent:  Percentage(c, p.TotalVotes),
			Selected: p.SelectedChoice == c.ID,
			Winner:   out.WinnerID != "" && out.WinnerID == c.ID,
		}
	}
	return out
}

// Percentage is the share of total held by c, 0 when nobody has voted.
func Percentage(c Choice, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(c.VoteCount) * 100 / float64(total)
}

// WinningChoice returns the choice with the most votes; the earliest choice
// wins a tie.
func WinningChoice(choices []Choice) (Choice, bool) {
	if len(choices) == 0 {
		return Choice{}, false
	}
	best := choices[0]
	for _, c := range choices[1:] {
		if c.VoteCount > best.VoteCount {
			best = c
		}
	}
	return best, true
}
