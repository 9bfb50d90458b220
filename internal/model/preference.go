package model

import "time"

// DeskPreference records that a user marked a desk as preferred. The pair is
// the primary key, so marking the same desk again is a no-op.
type DeskPreference struct {
	UserID    string    `gorm:"primaryKey" json:"userId"`
	DeskID    string    `gorm:"primaryKey" json:"deskId"`
	CreatedAt time.Time `json:"-"`
}
