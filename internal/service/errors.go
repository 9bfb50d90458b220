package service

import "errors"

// Error taxonomy for the operation surface. Every mutating operation returns
// one of these (wrapped with context) instead of panicking across the
// boundary; callers match with errors.Is.
var (
	// ErrNotFound is returned when a referenced floor or desk does not exist.
	ErrNotFound = errors.New("service: not found")
	// ErrConflict is returned for a duplicate desk id or an overlapping
	// reservation on a desk.
	ErrConflict = errors.New("service: conflict")
	// ErrDeskBlocked is returned when a reservation targets a blocked desk.
	ErrDeskBlocked = errors.New("service: desk is blocked")
	// ErrInvalidArgument is returned for malformed coordinates, date ranges,
	// or weekday sets.
	ErrInvalidArgument = errors.New("service: invalid argument")
	// ErrStorage is returned when the underlying persistence fails.
	ErrStorage = errors.New("service: storage failure")
)
