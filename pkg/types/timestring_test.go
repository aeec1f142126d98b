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
		{name: "valid", input: "19:30", want: "19:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hourOutOfRange", input: "24:00", wantErr: true},
		{name: "minuteOutOfRange", input: "12:60", wantErr: true},
		{name: "withSeconds", input: "19:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "dinner", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringCompare(t *testing.T) {
	early := TimeString("12:00")
	late := TimeString("19:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("19:30")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:15"), got)
}

func TestTimeStringScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{name: "stringWithSeconds", src: "19:30:00", want: "19:30"},
		{name: "plainString", src: "12:15", want: "12:15"},
		{name: "bytes", src: []byte("08:00:00"), want: "08:00"},
		{name: "timeTime", src: time.Date(2026, 1, 1, 21, 45, 0, 0, time.UTC), want: "21:45"},
		{name: "null", src: nil, want: ""},
		{name: "unsupported", src: 1930, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeStringValue(t *testing.T) {
	val, err := TimeString("19:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "19:30", val)

	val, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, val)

	_, err = TimeString("bad").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
