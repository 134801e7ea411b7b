package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"9:30", 0, true},
		{"09:5", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12-30", 0, true},
		{"+9:30", 0, true},
		{"09:+5", 0, true},
		{"-1:30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestValidateClockRange(t *testing.T) {
	assert.NoError(t, ValidateClockRange("09:00", "10:30"))
	assert.Error(t, ValidateClockRange("10:30", "09:00"), "end before start")
	assert.Error(t, ValidateClockRange("09:00", "09:00"), "zero-length window")
	assert.Error(t, ValidateClockRange("9:00", "10:00"), "malformed start")
	assert.Error(t, ValidateClockRange("09:00", "25:00"), "malformed end")
}

func TestClockOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical windows", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:30", "10:00", "11:00", true},
		{"contained window", "09:00", "12:00", "10:00", "11:00", true},
		{"touching at boundary", "09:00", "10:00", "10:00", "11:00", false},
		{"touching reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "13:00", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockOverlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, ClockOverlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestDayIndex(t *testing.T) {
	idx, ok := DayIndex("Monday")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = DayIndex("Sunday")
	require.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = DayIndex("monday")
	assert.False(t, ok)

	_, ok = DayIndex("Funday")
	assert.False(t, ok)
}
