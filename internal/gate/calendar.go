package gate

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Calendar converts instants into game days. A day is represented as UTC
// midnight of the civil date observed in Location, so it compares and
// persists without carrying a zone.
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a calendar for loc. A nil loc means UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// LoadCalendar resolves an IANA zone name. An empty name means UTC.
func LoadCalendar(name string) (Calendar, error) {
	if name == "" {
		return NewCalendar(time.UTC), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return NewCalendar(loc), nil
}

// Location returns the zone days are observed in.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Today returns the game day containing now.
func (c Calendar) Today(now time.Time) time.Time {
	y, m, d := now.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsToday reports whether day is the game day containing now. The zero day
// is never today.
func (c Calendar) IsToday(day, now time.Time) bool {
	return !day.IsZero() && sameDay(day, c.Today(now))
}

// IsYesterday reports whether day is the game day before the one containing now.
func (c Calendar) IsYesterday(day, now time.Time) bool {
	return !day.IsZero() && sameDay(day, c.Today(now).AddDate(0, 0, -1))
}

// NextReset returns the instant the next game day starts.
func (c Calendar) NextReset(now time.Time) time.Time {
	local := now.In(c.Location())
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
