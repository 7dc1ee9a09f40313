package schema

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	sqliteDateTime = "2006-01-02 15:04:05"
	sqliteDate     = "2006-01-02"
)

// NormalizeValue brings a scanned driver value back to what SQLite stored.
// Byte slices become strings and the times the driver parses out of
// DATE/DATETIME columns return to their stored text, without a zone.
func NormalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return formatTime(val)
	}
	return v
}

// FormatFloat writes a REAL in plain decimal form; whole numbers keep a
// trailing ".0" so they still read as REAL.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatTime uses the date-only layout when there is no time of day.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(sqliteDate)
	}
	return t.Format(sqliteDateTime)
}
