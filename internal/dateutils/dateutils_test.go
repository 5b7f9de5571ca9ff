package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"ZeroPaddedMonth", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "2025-03"},
		{"December", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "2024-12"},
		{"January", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "2026-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthKey(tc.date))
		})
	}
}

func TestCurrentMonthKey(t *testing.T) {
	key := CurrentMonthKey()
	assert.Len(t, key, 7)
	assert.Equal(t, MonthKey(time.Now()), key)
}

func TestParseMonthKey(t *testing.T) {
	parsed, err := ParseMonthKey("2025-08")
	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())

	_, err = ParseMonthKey("2025/08")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"ISO", "2025-08-29"},
		{"European", "29.08.2025"},
		{"Slashes", "29/08/2025"},
		{"WithSpaces", " 2025-08-29 "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, _, err := ParseDate(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, 2025, parsed.Year())
			assert.Equal(t, time.August, parsed.Month())
			assert.Equal(t, 29, parsed.Day())
		})
	}

	_, _, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"ThirtyDays", time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), 30},
		{"ThirtyOneDays", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), 31},
		{"FebruaryLeapYear", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), 29},
		{"FebruaryCommonYear", time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), 28},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysInMonth(tc.date))
		})
	}
}

func TestStartAndEndOfMonth(t *testing.T) {
	date := time.Date(2025, time.August, 29, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, StartOfMonth(date).Day())
	assert.Equal(t, 31, EndOfMonth(date).Day())
	assert.Equal(t, time.August, EndOfMonth(date).Month())
}
