package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed "now" so tests don't depend on the wall clock. Mid-day UTC avoids any
// ambiguity about which calendar day the timestamp lands on.
var now = time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []time.Time
		want    int
	}{
		{"empty input", nil, 0},
		{"only today", []time.Time{now}, 1},
		{"three consecutive days ending today", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"gap ends the streak", []time.Time{daysAgo(0), daysAgo(1), daysAgo(3)}, 2},
		{"today missing, yesterday present", []time.Time{daysAgo(1), daysAgo(2)}, 2},
		{"today and yesterday missing", []time.Time{daysAgo(2), daysAgo(3)}, 0},
		{"duplicate entries same day count once", []time.Time{now, now.Add(-2 * time.Hour)}, 1},
		{"unordered input", []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := BuildDaySet(tt.entries)
			assert.Equal(t, tt.want, CurrentStreak(set, now))
		})
	}
}

func TestBuildDaySetDeduplicates(t *testing.T) {
	set := BuildDaySet([]time.Time{now, now.Add(-time.Hour), daysAgo(1)})
	assert.Len(t, set, 2)
}

func TestDayKeyIsUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	// 23:30 EST is already the next day in UTC
	late := time.Date(2026, time.March, 14, 23, 30, 0, 0, est)
	assert.Equal(t, "2026-03-15", DayKey(late))
}

func TestTrailingDays(t *testing.T) {
	set := BuildDaySet([]time.Time{daysAgo(0), daysAgo(2), daysAgo(6)})
	days := TrailingDays(set, now, 7)
	require.Len(t, days, 7)

	// Oldest to newest
	assert.Equal(t, DayKey(daysAgo(6)), days[0].Date)
	assert.Equal(t, DayKey(now), days[6].Date)

	wantDone := []bool{true, false, false, false, true, false, true}
	for i, d := range days {
		assert.Equal(t, wantDone[i], d.Done, "day %s", d.Date)
	}
}

func TestTrailingDaysEmpty(t *testing.T) {
	days := TrailingDays(BuildDaySet(nil), now, 7)
	require.Len(t, days, 7)
	for _, d := range days {
		assert.False(t, d.Done)
	}
}
