package booking

import (
	"time"

	"atlasrent-backend/internal/domain"
)

// Interval is a closed day range.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BlockingInterval computes the day range a reservation keeps off the
// calendar: [start_date, return_date] when free days pushed the return out,
// [start_date, end_date] otherwise.
func BlockingInterval(r *domain.Reservation) (Interval, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseDate(r.BlockingEnd())
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: StartOfDay(start), End: EndOfDay(end)}, nil
}

// FindConflict tests the candidate range against each reservation in caller
// order and returns the first blocking interval that overlaps, or nil when
// the range is free. Callers pass reservations already filtered to blocking
// statuses.
func FindConflict(start, end time.Time, reservations []domain.Reservation) (*Interval, error) {
	for i := range reservations {
		blocked, err := BlockingInterval(&reservations[i])
		if err != nil {
			return nil, err
		}
		if Overlaps(start, end, blocked.Start, blocked.End) {
			return &blocked, nil
		}
	}
	return nil, nil
}
