package fabricate

import "time"

// Mode selects how a run treats existing history.
type Mode int

const (
	// ModeFresh rewrites the stable branch from staging and backfills a
	// full window of synthetic history.
	ModeFresh Mode = iota
	// ModeResume continues forward from the stable branch's last commit.
	ModeResume
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFresh:
		return "fresh"
	case ModeResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Window is the half-open [Start, End) date range to fabricate over.
type Window struct {
	Start time.Time
	End   time.Time
	Mode  Mode
}

// Days expands the window into its calendar days. Start is truncated to
// midnight; a day is included while its midnight is strictly before End.
func (w Window) Days() []time.Time {
	var days []time.Time
	for day := StartOfDay(w.Start); day.Before(w.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
