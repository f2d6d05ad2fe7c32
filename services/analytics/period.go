package analytics

import (
	"strings"
	"time"

	"logistics-requests/errs"

	"github.com/jinzhu/now"
)

const dateLayout = "2006-01-02"

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// Window is a half-open [From, To) range; nil ends are unbounded.
type Window struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// ResolveWindow turns a named period, or explicit from/to dates, into a
// Window relative to at. Explicit dates win; to is inclusive of that day.
func ResolveWindow(period, from, to string, at time.Time) (Window, error) {
	if from != "" || to != "" {
		return explicitWindow(from, to, at.Location())
	}

	cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: at.Location()}
	n := cfg.With(at)
	var start, end time.Time
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", PeriodAll:
		return Window{}, nil
	case PeriodDay:
		start = n.BeginningOfDay()
		end = start.AddDate(0, 0, 1)
	case PeriodWeek:
		start = n.BeginningOfWeek()
		end = start.AddDate(0, 0, 7)
	case PeriodMonth:
		start = n.BeginningOfMonth()
		end = start.AddDate(0, 1, 0)
	case PeriodYear:
		start = n.BeginningOfYear()
		end = start.AddDate(1, 0, 0)
	default:
		return Window{}, errs.Validation("period must be one of day, week, month, year, all")
	}
	return Window{From: &start, To: &end}, nil
}

func explicitWindow(from, to string, loc *time.Location) (Window, error) {
	var w Window
	if from != "" {
		t, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return Window{}, errs.Validation("from must be a date like 2025-01-31")
		}
		w.From = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return Window{}, errs.Validation("to must be a date like 2025-01-31")
		}
		end := now.With(t).EndOfDay().Add(time.Nanosecond)
		w.To = &end
	}
	if w.From != nil && w.To != nil && !w.From.Before(*w.To) {
		return Window{}, errs.Validation("from must not be after to")
	}
	return w, nil
}
