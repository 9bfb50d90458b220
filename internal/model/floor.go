package model

import "time"

// Floor is a named floor plan. MapData holds the raw uploaded image bytes;
// the engine treats them as opaque. The record and its bytes live in one row
// so creating a floor is atomic.
type Floor struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	MapData   []byte    `gorm:"column:map_data" json:"map"`
	CreatedAt time.Time `json:"-"`
}
