package clock

import "time"

// StudioTimezone is the civil timezone all booking decisions are made in.
// Studio hours, the monthly allocation window and the cancellation
// thresholds are local concepts tied to the studio's physical location,
// so callers must never use their own locale.
const StudioTimezone = "America/Los_Angeles"

// Clock provides the current time in the studio's timezone. Services take
// a Clock instead of calling time.Now so tests can freeze it.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type studioClock struct {
	loc *time.Location
}

// NewStudioClock returns a Clock pinned to America/Los_Angeles.
func NewStudioClock() (Clock, error) {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		return nil, err
	}
	return &studioClock{loc: loc}, nil
}

func (c *studioClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *studioClock) Location() *time.Location {
	return c.loc
}

type fixedClock struct {
	now time.Time
}

// NewFixedClock returns a Clock frozen at the given instant, converted to
// the studio timezone. Intended for tests.
func NewFixedClock(now time.Time) Clock {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		panic(err)
	}
	return &fixedClock{now: now.In(loc)}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Location() *time.Location {
	return c.now.Location()
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthBounds returns the first and last day of t's calendar month,
// both at midnight in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// EndOfMonth returns 23:59:59 on the last day of t's calendar month.
func EndOfMonth(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, 0).Add(-time.Second)
}
