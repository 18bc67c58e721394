package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"full width", 2*24*time.Hour + 5*time.Hour + 3*time.Minute + 12*time.Second, "2d 5h 3m 12s"},
		{"zero hours kept once days shown", 3*24*time.Hour + 42*time.Second, "3d 0h 0m 42s"},
		{"hours lead", 5*time.Hour + 59*time.Minute, "5h 59m 0s"},
		{"minutes lead", 3*time.Minute + 4*time.Second, "3m 4s"},
		{"seconds only", 42 * time.Second, "42s"},
		{"zero", 0, "0s"},
		{"negative clamps", -time.Minute, "0s"},
		{"sub-second truncates", 900 * time.Millisecond, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCountdown(tt.d, EnglishLabels))
		})
	}
}

func TestFormatCountdownCustomLabels(t *testing.T) {
	hu := CountdownLabels{Day: "n", Hour: "ó", Minute: "p", Second: "mp"}
	got := FormatCountdown(26*time.Hour+30*time.Second, hu)
	assert.Equal(t, "1n 2ó 0p 30mp", got)
}
