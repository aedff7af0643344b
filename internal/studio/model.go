package studio

import "time"

type Studio struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SlotAvailability is one grid slot on a given day, annotated for the
// requesting member: Taken means someone holds it, Mine means that someone
// is the requester (shown as cancellable rather than unavailable).
type SlotAvailability struct {
	Slot
	Taken bool `json:"taken"`
	Mine  bool `json:"mine"`
}

type DaySchedule struct {
	StudioID int                `json:"studio_id"`
	Date     string             `json:"date"`
	Closed   bool               `json:"closed"`
	Slots    []SlotAvailability `json:"slots"`
}

type CreateStudioRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}
