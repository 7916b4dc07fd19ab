package shared

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	integerRegex  = regexp.MustCompile(`^[0-9]+$`)
	decimalRegex  = regexp.MustCompile(`^[0-9]+[.]?[0-9]+$`)
	durationRegex = regexp.MustCompile(`^\d{1,2}(:\d{1,2}){1,2}$`)
)

// IsInteger checks for a plain non-negative integer string.
func IsInteger(value string) bool {
	return integerRegex.MatchString(value)
}

// IsDecimal checks for a decimal number (e.g. "72.5").
func IsDecimal(value string) bool {
	return decimalRegex.MatchString(value)
}

// IsDuration checks for a duration string (e.g. "12:30" or "1:02:45").
// Single-digit parts are treated as implicitly zero-padded.
func IsDuration(value string) bool {
	return durationRegex.MatchString(value)
}

// IsScoreValue reports whether a score result string is well formed:
// an integer repetition/weight count, a decimal, or a duration.
func IsScoreValue(value string) bool {
	return IsInteger(value) || IsDecimal(value) || IsDuration(value)
}

// DurationToSeconds converts a score duration ("H:MM" or "H:MM:SS") to
// seconds. Plain integer strings pass through unchanged. The second
// return is false when the input is not a valid duration.
func DurationToSeconds(value string) (int64, bool) {
	if IsInteger(value) {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	if !IsDuration(value) {
		return 0, false
	}

	parts := strings.Split(value, ":")
	var sec int64
	switch len(parts) {
	case 2:
		h, _ := strconv.ParseInt(parts[0], 10, 64)
		m, _ := strconv.ParseInt(parts[1], 10, 64)
		sec = h*3600 + m*60
	case 3:
		h, _ := strconv.ParseInt(parts[0], 10, 64)
		m, _ := strconv.ParseInt(parts[1], 10, 64)
		s, _ := strconv.ParseInt(parts[2], 10, 64)
		sec = h*3600 + m*60 + s
	default:
		return 0, false
	}
	return sec, true
}

// FormatTimestamp renders a unix timestamp as "dd.mm.YYYY HH:MM" in
// local time, the display format used throughout the app.
func FormatTimestamp(unix int64) string {
	return time.Unix(unix, 0).Format("02.01.2006 15:04")
}
