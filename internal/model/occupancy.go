package model

// OccupancyReport is one day of derived occupancy. It is computed on demand
// from current desk and reservation state and never persisted. Date is the
// epoch-millisecond timestamp of the UTC day. TotalDesks counts every desk,
// blocked ones included.
type OccupancyReport struct {
	Date          int64 `json:"date"`
	TotalDesks    int   `json:"totalDesks"`
	OccupiedDesks int   `json:"occupiedDesks"`
}
