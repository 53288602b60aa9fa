package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "17:30", want: "17:30"},
		{name: "normalizes single digit hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minutes", input: "10:61", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "08:00", minutes: 30, want: "08:30"},
		{name: "crosses hour", start: "09:50", minutes: 110, want: "11:40"},
		{name: "slot plus buffer", start: "08:00", minutes: 150, want: "10:30"},
		{name: "to end of day", start: "23:00", minutes: 59, want: "23:59"},
		{name: "past midnight fails", start: "23:00", minutes: 60, wantErr: true},
		{name: "negative below zero fails", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("08:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:20").IsAfter("17:00"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, TimeString("09:26"), NewTimeString(now))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
