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
		{name: "valid morning", input: "10:00", want: "10:00"},
		{name: "valid evening", input: "19:30", want: "19:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "missing leading zero is normalized", input: "9:05", want: "09:05"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:61", wantErr: true},
		{name: "garbage", input: "ten o'clock", wantErr: true},
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
	start := TimeString("10:00")

	got, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	got, err = start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// crossing an hour boundary
	got, err = TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	// crossing midnight is an error, not a wrap
	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("19:00").IsAfter("18:30"))
	assert.False(t, TimeString("18:30").IsAfter("19:00"))
	assert.False(t, TimeString("18:30").IsAfter("18:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	// TIME columns come back with seconds through lib/pq
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:45"), ts)

	assert.Error(t, ts.Scan(42))
}
