package pricing

import (
	"errors"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Booking forms send wall-clock local datetimes without a zone; both ends of
// a window are interpreted in the same zone.
var windowLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type RentalWindow struct {
	start time.Time
	end   time.Time
}

// NewRentalWindow accepts any pair of instants. A window whose end does not
// lie after its start is degenerate and is floored to a one-day charge by the
// classifier rather than rejected here.
func NewRentalWindow(start, end time.Time) RentalWindow {
	return RentalWindow{start: start, end: end}
}

func ParseRentalWindow(start, end string) (RentalWindow, error) {
	startTime, err := parseLocalTime(start)
	if err != nil {
		return RentalWindow{}, err
	}
	endTime, err := parseLocalTime(end)
	if err != nil {
		return RentalWindow{}, err
	}
	return RentalWindow{start: startTime, end: endTime}, nil
}

func parseLocalTime(value string) (time.Time, error) {
	for _, layout := range windowLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

func (w RentalWindow) Start() time.Time {
	return w.start
}

func (w RentalWindow) End() time.Time {
	return w.end
}

func (w RentalWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w RentalWindow) SameCalendarDate() bool {
	y1, m1, d1 := w.start.Date()
	y2, m2, d2 := w.end.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
