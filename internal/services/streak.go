package services

import "time"

// Streak math is pure: it works on entry timestamps already fetched from
// Postgres, so it can be computed (and tested) without the database.
//
// All timestamps and "today" are normalized to UTC calendar days. Mixing UTC
// and local-day comparisons would make streaks flip around midnight depending
// on the server's zone.

const dayKeyLayout = "2006-01-02"

// DaySet is the set of distinct UTC calendar days that have at least one entry.
type DaySet map[string]struct{}

// DayKey normalizes a timestamp to its UTC calendar-day key.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// BuildDaySet collapses entry timestamps into distinct day keys. Multiple
// entries on the same calendar day count once.
func BuildDaySet(timestamps []time.Time) DaySet {
	set := make(DaySet, len(timestamps))
	for _, t := range timestamps {
		set[DayKey(t)] = struct{}{}
	}
	return set
}

// Contains reports whether the day of t is in the set.
func (s DaySet) Contains(t time.Time) bool {
	_, ok := s[DayKey(t)]
	return ok
}

// CurrentStreak returns the count of consecutive days with an entry, ending at
// now's day. A missing today does not break yesterday's streak: the walk then
// starts at yesterday and today is not counted.
func CurrentStreak(set DaySet, now time.Time) int {
	cursor := now.UTC()
	if !set.Contains(cursor) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for set.Contains(cursor) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// DayStatus is one day of the trailing completion map.
type DayStatus struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Done    bool   `json:"done"`
}

// TrailingDays reports, oldest to newest, whether each of the last n calendar
// days (ending with now's day) has an entry.
func TrailingDays(set DaySet, now time.Time, n int) []DayStatus {
	out := make([]DayStatus, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i)
		out = append(out, DayStatus{
			Date:    DayKey(day),
			Weekday: day.Weekday().String()[:3],
			Done:    set.Contains(day),
		})
	}
	return out
}
