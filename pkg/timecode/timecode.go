// Package timecode converts between video timestamps and durations.
package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pattern is the HH:MM:SS form the model is asked to produce.
const Pattern = `^\d{2}:\d{2}:\d{2}$`

var (
	strictPattern = regexp.MustCompile(Pattern)
	fieldPattern  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// IsStrict reports whether s is exactly HH:MM:SS.
func IsStrict(s string) bool {
	return strictPattern.MatchString(s)
}

// Parse parses SS[.mmm], MM:SS or HH:MM:SS[.mmm]
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp format: %s", s)
	}

	var total float64
	for _, part := range parts {
		// digits with an optional fraction; no NaN, Inf or exponents
		if !fieldPattern.MatchString(part) {
			return 0, fmt.Errorf("invalid timestamp format: %s", s)
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", s)
		}
		total = total*60 + v
	}

	return time.Duration(total * float64(time.Second)), nil
}

// Format renders d as HH:MM:SS, dropping fractions of a second.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// FFmpeg renders d in the HH:MM:SS.mmm form accepted by -ss.
func FFmpeg(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := d.Seconds()
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
