package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf_MondayFirst(t *testing.T) {
	// 2024-01-15 is a Monday.
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	for i, want := range AllWeekdays() {
		assert.Equal(t, want, WeekdayOf(base.AddDate(0, 0, i)), "offset %d", i)
	}
}

func TestWeekday_StringRoundTripsThroughParse(t *testing.T) {
	for _, d := range AllWeekdays() {
		got, err := ParseWeekday(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestParseWeekday_IsCaseSensitive(t *testing.T) {
	_, err := ParseWeekday("monday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)

	_, err = ParseWeekday(" Monday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestParseWeekdayFold(t *testing.T) {
	cases := map[string]Weekday{
		"mon":       Monday,
		"TUESDAY":   Tuesday,
		"Wed":       Wednesday,
		"thu":       Thursday,
		" friday ":  Friday,
		"sat":       Saturday,
		"Sun":       Sunday,
		"wednesday": Wednesday,
	}
	for in, want := range cases {
		got, err := ParseWeekdayFold(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWeekdayFold("t")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
	_, err = ParseWeekdayFold("funday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestWeekday_InvalidString(t *testing.T) {
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
	assert.False(t, Weekday(-1).Valid())
}
