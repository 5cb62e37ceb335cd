package pricing

import (
	"time"

	"lifepass-admin/internal/pkg/errs"
)

var (
	ErrMissingStartDate = errs.New("start date is required")
	ErrInvalidDateRange = errs.New("end date is before start date")
)

// DateRange is a calendar range. Times are truncated to the date in UTC.
type DateRange struct {
	start time.Time
	end   *time.Time
}

func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, ErrMissingStartDate
	}
	s := truncateDate(start)
	if end == nil {
		return DateRange{start: s}, nil
	}
	e := truncateDate(*end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: &e}, nil
}

func (r DateRange) Start() time.Time { return r.start }

func (r DateRange) End() *time.Time {
	if r.end == nil {
		return nil
	}
	e := *r.end
	return &e
}

// DaysValidity counts calendar days inclusively. A range without an end lasts one day.
func (r DateRange) DaysValidity() int {
	if r.end == nil {
		return 1
	}
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
