package timecode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"hh:mm:ss", "01:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"mm:ss", "02:30", 2*time.Minute + 30*time.Second, false},
		{"seconds", "45", 45 * time.Second, false},
		{"fractional", "00:00:01.500", 1500 * time.Millisecond, false},
		{"padded", "  00:00:10 ", 10 * time.Second, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"too many parts", "1:2:3:4", 0, true},
		{"negative", "00:-1:00", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "inf", 0, true},
		{"inf field", "00:00:Inf", 0, true},
		{"exponent", "1e3", 0, true},
		{"empty field", "00::10", 0, true},
		{"trailing dot", "10.", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00:00", Format(0))
	assert.Equal(t, "00:01:05", Format(65*time.Second+400*time.Millisecond))
	assert.Equal(t, "02:00:01", Format(2*time.Hour+time.Second))
	assert.Equal(t, "00:00:00", Format(-time.Second))
}

func TestFFmpeg(t *testing.T) {
	assert.Equal(t, "00:01:05.500", FFmpeg(65*time.Second+500*time.Millisecond))
	assert.Equal(t, "01:00:00.000", FFmpeg(time.Hour))
}

func TestIsStrict(t *testing.T) {
	assert.True(t, IsStrict("00:01:02"))
	assert.False(t, IsStrict("1:02"))
	assert.False(t, IsStrict("00:01:02.5"))
	assert.False(t, IsStrict(""))
}
