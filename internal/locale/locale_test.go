package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize("en"))
	assert.Equal(t, "hu", Normalize("hu"))
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("de"))
}

func TestCountdownLabels(t *testing.T) {
	en := CountdownLabels("en")
	assert.Equal(t, "d", en.Day)
	assert.Equal(t, "s", en.Second)

	hu := CountdownLabels("hu")
	assert.Equal(t, "n", hu.Day)
	assert.Equal(t, "mp", hu.Second)

	// Unsupported languages get English labels.
	assert.Equal(t, en, CountdownLabels("fr"))
}

func TestFormatCountdown(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 5*time.Second
	assert.Equal(t, "1d 2h 3m 5s", FormatCountdown("en", d))
	assert.Equal(t, "1n 2ó 3p 5mp", FormatCountdown("hu", d))
}

func TestFormatExpiry(t *testing.T) {
	at := time.Date(2025, 6, 18, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Expires on Jun 18, 2025 09:30", FormatExpiry("en", at))
	assert.Equal(t, "Lejárat: 2025. 06. 18. 09:30", FormatExpiry("hu", at))
}
