package access

import (
	"fmt"
	"strings"
	"time"
)

// CountdownLabels are the per-locale unit suffixes used when rendering a
// remaining duration as "2d 5h 3m 12s". Label sets live in internal/locale;
// EnglishLabels is the fallback.
type CountdownLabels struct {
	Day    string
	Hour   string
	Minute string
	Second string
}

var EnglishLabels = CountdownLabels{Day: "d", Hour: "h", Minute: "m", Second: "s"}

// FormatCountdown renders d starting at the coarsest non-zero unit, so a
// fresh trial shows "2d 23h 59m 58s" and the last minute shows "42s".
// Negative durations render as "0s"-style zero.
func FormatCountdown(d time.Duration, labels CountdownLabels) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	seconds := int((d - time.Duration(minutes)*time.Minute) / time.Second)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", days, labels.Day))
	}
	if len(parts) > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", hours, labels.Hour))
	}
	if len(parts) > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", minutes, labels.Minute))
	}
	parts = append(parts, fmt.Sprintf("%d%s", seconds, labels.Second))

	return strings.Join(parts, " ")
}
