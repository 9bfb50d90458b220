package model

import "time"

// Desk is a bookable seat placed at (X, Y) on a floor plan. Number is the
// human-facing label and is not required to be unique. A blocked desk stays
// in the inventory but rejects new reservations.
type Desk struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null" json:"number"`
	X         int       `gorm:"not null" json:"x"`
	Y         int       `gorm:"not null" json:"y"`
	IsBlocked bool      `gorm:"not null" json:"isBlocked"`
	CreatedAt time.Time `json:"-"`
}
