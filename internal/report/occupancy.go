// Package report derives daily occupancy statistics from desk and
// reservation state.
package report

import (
	"context"
	"errors"
	"fmt"

	"deskbook-backend/internal/booking"
	"deskbook-backend/internal/model"
	"deskbook-backend/internal/store"
)

// ErrInvalidRange indicates the start of the requested range falls after its
// end.
var ErrInvalidRange = errors.New("report: start date is after end date")

// Reporter computes occupancy reports on demand. It reads from the store and
// mutates nothing.
type Reporter struct {
	store store.Store
}

// NewReporter creates a Reporter over the given store.
func NewReporter(s store.Store) *Reporter {
	return &Reporter{store: s}
}

// Occupancy returns one entry per UTC day in the inclusive range
// [startMs, endMs], in chronological order. Both bounds are epoch
// milliseconds and are truncated to days before comparison. TotalDesks counts
// every desk, blocked ones included; OccupiedDesks counts desks with at least
// one reservation covering that day, with recurring coverage re-evaluated per
// day. Days nobody booked yield OccupiedDesks = 0, not an error.
func (r *Reporter) Occupancy(ctx context.Context, startMs, endMs int64) ([]model.OccupancyReport, error) {
	startDay := booking.DayOf(startMs)
	endDay := booking.DayOf(endMs)
	if startDay > endDay {
		return nil, ErrInvalidRange
	}

	total, err := r.store.CountDesks(ctx)
	if err != nil {
		return nil, fmt.Errorf("count desks: %w", err)
	}
	reservations, err := r.store.ListReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	// Group once by desk so each day only scans distinct desks.
	byDesk := make(map[string][]model.Reservation)
	for _, res := range reservations {
		byDesk[res.DeskID] = append(byDesk[res.DeskID], res)
	}

	reports := make([]model.OccupancyReport, 0, endDay-startDay+1)
	for day := startDay; day <= endDay; day++ {
		occupied := 0
		for _, deskReservations := range byDesk {
			for _, res := range deskReservations {
				if booking.Covers(res, day) {
					occupied++
					break
				}
			}
		}
		reports = append(reports, model.OccupancyReport{
			Date:          booking.DayStart(day),
			TotalDesks:    int(total),
			OccupiedDesks: occupied,
		})
	}
	return reports, nil
}
