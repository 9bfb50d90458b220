// Package service is the operation surface of the reservation engine. It
// validates inputs, serializes writes per desk, and translates store and
// booking failures into the error taxonomy the API boundary exposes.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"deskbook-backend/internal/booking"
	"deskbook-backend/internal/ids"
	"deskbook-backend/internal/model"
	"deskbook-backend/internal/report"
	"deskbook-backend/internal/store"
)

// Service owns desks, floors, reservations, and preferences.
type Service struct {
	store    store.Store
	reporter *report.Reporter
	locks    *deskLocks
	nextID   ids.Generator
	logger   *zap.Logger
}

// New creates a Service over the given store.
func New(s store.Store, gen ids.Generator, logger *zap.Logger) *Service {
	return &Service{
		store:    s,
		reporter: report.NewReporter(s),
		locks:    newDeskLocks(),
		nextID:   gen,
		logger:   logger,
	}
}

// AddDesk creates an unblocked desk with the caller-chosen id.
func (s *Service) AddDesk(ctx context.Context, id string, number, x, y int) error {
	if id == "" {
		return fmt.Errorf("%w: desk id must not be empty", ErrInvalidArgument)
	}
	if number < 0 {
		return fmt.Errorf("%w: desk number must not be negative", ErrInvalidArgument)
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: desk coordinates must not be negative", ErrInvalidArgument)
	}

	mu := s.locks.get(id)
	mu.Lock()
	defer mu.Unlock()

	_, err := s.store.GetDesk(ctx, id)
	if err == nil {
		return fmt.Errorf("%w: desk %q already exists", ErrConflict, id)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	desk := &model.Desk{ID: id, Number: number, X: x, Y: y}
	if err := s.store.CreateDesk(ctx, desk); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.logger.Info("desk added", zap.String("desk_id", id), zap.Int("number", number))
	return nil
}

// BlockDesk sets the desk's blocked flag. Setting the current value again is
// not an error.
func (s *Service) BlockDesk(ctx context.Context, id string, blocked bool) error {
	mu := s.locks.get(id)
	mu.Lock()
	defer mu.Unlock()

	err := s.store.SetDeskBlocked(ctx, id, blocked)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: desk %q", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.logger.Info("desk block flag set", zap.String("desk_id", id), zap.Bool("blocked", blocked))
	return nil
}

// Desks returns the desk inventory in insertion order.
func (s *Service) Desks(ctx context.Context) ([]model.Desk, error) {
	desks, err := s.store.ListDesks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return desks, nil
}

// UploadFloorMap creates a floor with a fresh id holding the given bytes.
// The record and its bytes are written together, so a storage failure leaves
// nothing behind.
func (s *Service) UploadFloorMap(ctx context.Context, name string, mapData []byte) (string, error) {
	if mapData == nil {
		mapData = []byte{}
	}
	floor := &model.Floor{ID: s.nextID(), Name: name, MapData: mapData}
	if err := s.store.CreateFloor(ctx, floor); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.logger.Info("floor map uploaded",
		zap.String("floor_id", floor.ID),
		zap.String("name", name),
		zap.Int("bytes", len(mapData)))
	return floor.ID, nil
}

// DeleteFloorMap removes the floor. Desks are not linked to floors and are
// left untouched.
func (s *Service) DeleteFloorMap(ctx context.Context, id string) error {
	err := s.store.DeleteFloor(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: floor %q", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.logger.Info("floor map deleted", zap.String("floor_id", id))
	return nil
}

// Floors returns all floors, map bytes included, in insertion order.
func (s *Service) Floors(ctx context.Context) ([]model.Floor, error) {
	floors, err := s.store.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return floors, nil
}

// MakeReservation books a desk for a single UTC day or an open-ended weekly
// pattern. The whole check-then-commit sequence runs under the desk's lock so
// concurrent requests for the same free day cannot both succeed.
func (s *Service) MakeReservation(ctx context.Context, userID, deskID string, dateMs int64, recurring bool, recurringDays []int) (string, error) {
	days := []int{}
	if recurring {
		normalized, err := booking.NormalizeWeekdays(recurringDays)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		days = normalized
	}

	mu := s.locks.get(deskID)
	mu.Lock()
	defer mu.Unlock()

	desk, err := s.store.GetDesk(ctx, deskID)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: desk %q", ErrNotFound, deskID)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if desk.IsBlocked {
		return "", fmt.Errorf("%w: desk %q", ErrDeskBlocked, deskID)
	}

	existing, err := s.store.ListReservationsByDesk(ctx, deskID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	candidate := model.Reservation{
		ID:            s.nextID(),
		DeskID:        deskID,
		UserID:        userID,
		Date:          booking.TruncateToDay(dateMs),
		IsRecurring:   recurring,
		RecurringDays: days,
	}
	if booking.ConflictsAny(existing, candidate) {
		return "", fmt.Errorf("%w: desk %q is already reserved for a requested day", ErrConflict, deskID)
	}

	if err := s.store.CreateReservation(ctx, &candidate); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.logger.Info("reservation created",
		zap.String("reservation_id", candidate.ID),
		zap.String("desk_id", deskID),
		zap.String("user_id", userID),
		zap.Int64("date", candidate.Date),
		zap.Bool("recurring", recurring))
	return candidate.ID, nil
}

// Reservations returns the given user's reservations in insertion order.
func (s *Service) Reservations(ctx context.Context, userID string) ([]model.Reservation, error) {
	rs, err := s.store.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rs, nil
}

// AllReservations returns every reservation.
func (s *Service) AllReservations(ctx context.Context) ([]model.Reservation, error) {
	rs, err := s.store.ListReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rs, nil
}

// MarkPreferredDesk records the user's preference for a desk. Idempotent per
// (user, desk) pair.
func (s *Service) MarkPreferredDesk(ctx context.Context, userID, deskID string) error {
	_, err := s.store.GetDesk(ctx, deskID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: desk %q", ErrNotFound, deskID)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	pref := &model.DeskPreference{UserID: userID, DeskID: deskID}
	if err := s.store.UpsertPreference(ctx, pref); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// OccupancyReport returns one entry per UTC day in [startMs, endMs].
func (s *Service) OccupancyReport(ctx context.Context, startMs, endMs int64) ([]model.OccupancyReport, error) {
	reports, err := s.reporter.Occupancy(ctx, startMs, endMs)
	if errors.Is(err, report.ErrInvalidRange) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return reports, nil
}
