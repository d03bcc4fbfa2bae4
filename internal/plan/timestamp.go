// Package plan computes the segment windows and crossfade schedules that the
// engine realizes. All arithmetic is done in integer milliseconds so segment
// boundaries line up exactly when rendered back to decimal seconds.
package plan

import (
	"fmt"
	"regexp"
	"strconv"
)

// timestampRe matches [HH:]MM:SS with an optional 1-3 digit fraction.
var timestampRe = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?$`)

// ParseTimestamp converts an HH:MM:SS.mmm string (hours and the fraction are
// optional) to milliseconds.
func ParseTimestamp(s string) (int64, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected HH:MM:SS.mmm)", ErrInvalidTimestamp, s)
	}

	hours := int64(0)
	if m[1] != "" {
		hours, _ = strconv.ParseInt(m[1], 10, 64)
	}
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q (minutes and seconds must be below 60)", ErrInvalidTimestamp, s)
	}

	ms := int64(0)
	if m[4] != "" {
		// Pad to millisecond resolution: ".2" means 200ms, not 2ms.
		frac := m[4]
		for len(frac) < 3 {
			frac += "0"
		}
		ms, _ = strconv.ParseInt(frac, 10, 64)
	}

	return ((hours*60+minutes)*60+seconds)*1000 + ms, nil
}

// FormatSeconds renders milliseconds as decimal seconds with exactly three
// fractional digits, the form the engine accepts for -ss/-t and filter args.
func FormatSeconds(ms int64) string {
	neg := ""
	if ms < 0 {
		neg = "-"
		ms = -ms
	}
	return fmt.Sprintf("%s%d.%03d", neg, ms/1000, ms%1000)
}

// FormatTimestamp renders milliseconds back to HH:MM:SS.mmm.
func FormatTimestamp(ms int64) string {
	h := ms / 3600000
	m := ms % 3600000 / 60000
	s := ms % 60000 / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms%1000)
}
