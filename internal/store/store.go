package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskbook-backend/internal/model"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("store: record not found")

// Store defines the interface for all database operations.
type Store interface {
	CreateFloor(ctx context.Context, floor *model.Floor) error
	DeleteFloor(ctx context.Context, id string) error
	ListFloors(ctx context.Context) ([]model.Floor, error)

	CreateDesk(ctx context.Context, desk *model.Desk) error
	GetDesk(ctx context.Context, id string) (*model.Desk, error)
	SetDeskBlocked(ctx context.Context, id string, blocked bool) error
	ListDesks(ctx context.Context) ([]model.Desk, error)
	CountDesks(ctx context.Context) (int64, error)

	CreateReservation(ctx context.Context, r *model.Reservation) error
	ListReservationsByDesk(ctx context.Context, deskID string) ([]model.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID string) ([]model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)

	UpsertPreference(ctx context.Context, pref *model.DeskPreference) error

	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for callers that need raw access.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) CreateFloor(ctx context.Context, floor *model.Floor) error {
	if err := s.db.WithContext(ctx).Create(floor).Error; err != nil {
		return fmt.Errorf("failed to create floor %s: %w", floor.ID, err)
	}
	return nil
}

func (s *gormStore) DeleteFloor(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Floor{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete floor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListFloors(ctx context.Context) ([]model.Floor, error) {
	floors := make([]model.Floor, 0)
	if err := s.db.WithContext(ctx).Order("created_at").Find(&floors).Error; err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}
	return floors, nil
}

func (s *gormStore) CreateDesk(ctx context.Context, desk *model.Desk) error {
	if err := s.db.WithContext(ctx).Create(desk).Error; err != nil {
		return fmt.Errorf("failed to create desk %s: %w", desk.ID, err)
	}
	return nil
}

func (s *gormStore) GetDesk(ctx context.Context, id string) (*model.Desk, error) {
	var desk model.Desk
	err := s.db.WithContext(ctx).First(&desk, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get desk %s: %w", id, err)
	}
	return &desk, nil
}

func (s *gormStore) SetDeskBlocked(ctx context.Context, id string, blocked bool) error {
	res := s.db.WithContext(ctx).Model(&model.Desk{}).Where("id = ?", id).Update("is_blocked", blocked)
	if res.Error != nil {
		return fmt.Errorf("failed to update desk %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListDesks(ctx context.Context) ([]model.Desk, error) {
	desks := make([]model.Desk, 0)
	if err := s.db.WithContext(ctx).Order("created_at").Find(&desks).Error; err != nil {
		return nil, fmt.Errorf("failed to list desks: %w", err)
	}
	return desks, nil
}

func (s *gormStore) CountDesks(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Desk{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count desks: %w", err)
	}
	return count, nil
}

func (s *gormStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create reservation %s: %w", r.ID, err)
	}
	return nil
}

func (s *gormStore) ListReservationsByDesk(ctx context.Context, deskID string) ([]model.Reservation, error) {
	rs := make([]model.Reservation, 0)
	if err := s.db.WithContext(ctx).Where("desk_id = ?", deskID).Order("created_at").Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations for desk %s: %w", deskID, err)
	}
	return rs, nil
}

func (s *gormStore) ListReservationsByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	rs := make([]model.Reservation, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations for user %s: %w", userID, err)
	}
	return rs, nil
}

func (s *gormStore) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	rs := make([]model.Reservation, 0)
	if err := s.db.WithContext(ctx).Order("created_at").Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return rs, nil
}

// UpsertPreference records a preferred-desk marking. The (user, desk) pair is
// the primary key; marking it again is a no-op rather than an error.
func (s *gormStore) UpsertPreference(ctx context.Context, pref *model.DeskPreference) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "desk_id"}},
		DoNothing: true,
	}).Create(pref).Error; err != nil {
		return fmt.Errorf("failed to upsert preference for desk %s: %w", pref.DeskID, err)
	}
	return nil
}
