package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"full form", "00:00:03.000", 3000, false},
		{"with hours", "01:02:03.456", 3723456, false},
		{"no fraction", "00:01:30", 90000, false},
		{"short fraction pads right", "00:00:01.2", 1200, false},
		{"two digit fraction", "00:00:01.25", 1250, false},
		{"minutes seconds only", "02:30", 150000, false},
		{"minutes seconds with fraction", "2:30.5", 150500, false},
		{"zero", "00:00:00.000", 0, false},
		{"empty", "", 0, true},
		{"bare seconds", "90", 0, true},
		{"minutes out of range", "00:61:00", 0, true},
		{"seconds out of range", "00:00:75", 0, true},
		{"four digit fraction", "00:00:01.2345", 0, true},
		{"garbage", "three seconds", 0, true},
		{"negative", "-00:00:03", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0.000"},
		{3000, "3.000"},
		{2800, "2.800"},
		{200, "0.200"},
		{3723456, "3723.456"},
		{5, "0.005"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.ms))
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 3723456} {
		s := FormatTimestamp(ms)
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, ms, got, s)
	}
}
