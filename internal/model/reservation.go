package model

import "time"

// Reservation is a claim on a desk. Date is epoch milliseconds truncated to
// a UTC day. A non-recurring reservation covers exactly its date. A recurring
// one covers every occurrence of the weekdays in RecurringDays on or after
// the date, open-ended; weekday indices run 0=Sunday through 6=Saturday.
// Reservations are immutable once created.
type Reservation struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	DeskID        string    `gorm:"not null;index" json:"deskId"`
	UserID        string    `gorm:"not null;index" json:"userId"`
	Date          int64     `gorm:"not null" json:"date"`
	IsRecurring   bool      `gorm:"not null" json:"isRecurring"`
	RecurringDays []int     `gorm:"serializer:json;type:text" json:"recurringDays"`
	CreatedAt     time.Time `json:"-"`
}
