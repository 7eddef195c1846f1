package lexical

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	bracketedPattern = regexp.MustCompile(`\([^)]*\)`)
	nonKeyPattern    = regexp.MustCompile(`[^a-zñ ]+`)
	spacePattern     = regexp.MustCompile(`\s+`)
	dollarPattern    = regexp.MustCompile(`^-?\$ ?-?[\d,]*\.?\d+$`)
)

// NormalizeKey turns a free-text column label into a stable snake_case key.
// Normalizing an already normalized key returns it unchanged.
func NormalizeKey(label string) string {
	key := strings.ToLower(label)
	key = strings.ReplaceAll(key, "ñ", "n")
	key = StripDiacritics(key)
	key = bracketedPattern.ReplaceAllString(key, " ")
	key = nonKeyPattern.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)

	return spacePattern.ReplaceAllString(key, "_")
}

// DetectAndConvert types a raw tabular cell value.
//
// Empty values become nil, DD/MM/YYYY values become ISO date-times (retrying as
// MM/DD/YYYY when the first reading is not a calendar date), dollar amounts become
// float64. Any other value under a key containing "fecha" is an unparseable date and
// becomes nil; everything else is returned as is.
func DetectAndConvert(raw, key string) any {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if m := slashDatePattern.FindStringSubmatch(value); m != nil {
		if isCalendarDate(m[3], m[2], m[1]) {
			return ParseSlashDate(value)
		}

		if isCalendarDate(m[3], m[1], m[2]) {
			return ParseSlashDate(m[2] + "/" + m[1] + "/" + m[3])
		}

		return nil
	}

	if dollarPattern.MatchString(value) {
		if f := ParseMonetary(value); !math.IsNaN(f) {
			return f
		}
	}

	if strings.Contains(key, "fecha") {
		return nil
	}

	return raw
}

func isCalendarDate(year, month, day string) bool {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)

	if errY != nil || errM != nil || errD != nil {
		return false
	}

	if m < 1 || m > 12 || d < 1 {
		return false
	}

	return d <= daysIn(m, y)
}

func daysIn(month, year int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}

		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
