package studio

import "time"

// Slot is one of the six fixed 2-hour booking windows. The grid never
// changes per studio or per day; studios are closed on Sundays.
type Slot struct {
	Start string `json:"start" example:"09:00"`
	End   string `json:"end" example:"11:00"`
}

var Grid = []Slot{
	{Start: "09:00", End: "11:00"},
	{Start: "11:00", End: "13:00"},
	{Start: "13:00", End: "15:00"},
	{Start: "15:00", End: "17:00"},
	{Start: "17:00", End: "19:00"},
	{Start: "19:00", End: "21:00"},
}

// SlotByStart looks up a grid slot by its start time ("15:04").
func SlotByStart(start string) (Slot, bool) {
	for _, s := range Grid {
		if s.Start == start {
			return s, true
		}
	}
	return Slot{}, false
}

// IsClosedDay reports whether the studio is closed on the given date.
func IsClosedDay(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// SlotStart combines a calendar day with a slot start time in the given
// location. Only the civil date components of day are used.
func SlotStart(day time.Time, start string, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
