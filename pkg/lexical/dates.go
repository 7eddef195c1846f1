package lexical

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the date-time layout of every emitted date.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Guatemala and central Mexico publish local dates without offset; they are read as UTC-6.
var localZone = time.FixedZone("UTC-6", -6*60*60)

var (
	slashDatePattern   = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	spanishDatePattern = regexp.MustCompile(
		`(?i)^(\d{1,2})[./\- ]([a-z]{3,4})\.?[./\- ](\d{4})` +
			`(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([ap])\.?\s*m\.?)?)?$`)
)

// spanishMonths maps the abbreviations used by Guatecompras to month numbers.
var spanishMonths = map[string]time.Month{
	"ene":  time.January,
	"feb":  time.February,
	"mar":  time.March,
	"abr":  time.April,
	"may":  time.May,
	"jun":  time.June,
	"jul":  time.July,
	"ago":  time.August,
	"sep":  time.September,
	"sept": time.September,
	"set":  time.September,
	"oct":  time.October,
	"nov":  time.November,
	"dic":  time.December,
}

var isoInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSlashDate converts DD/MM/YYYY into a local-midnight ISO date-time.
// Anything else yields nil.
func ParseSlashDate(s string) *string {
	m := slashDatePattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	out := m[3] + "-" + m[2] + "-" + m[1] + "T00:00:00.000-06:00"

	return &out
}

// ParseSpanishDate reads Guatecompras historic dates such as "20.ago.2013 11:18:02 a.m.".
func ParseSpanishDate(s string) *string {
	m := spanishDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil
	}

	month, ok := spanishMonths[strings.ToLower(m[2])]
	if !ok {
		return nil
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])

	var hour, minute, second int
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		second, _ = strconv.Atoi(m[6])

		switch strings.ToLower(m[7]) {
		case "p":
			if hour < 12 {
				hour += 12
			}
		case "a":
			if hour == 12 {
				hour = 0
			}
		}
	}

	if day < 1 || day > daysIn(int(month), year) || hour > 23 || minute > 59 || second > 59 {
		return nil
	}

	out := time.Date(year, month, day, hour, minute, second, 0, localZone).Format(ISOLayout)

	return &out
}

// ISODateTime re-emits an ISO-like or DD/MM/YYYY date in ISOLayout.
// Zone-less ISO input is read as UTC. Unparseable input yields nil.
func ISODateTime(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if slashDatePattern.MatchString(s) {
		return ParseSlashDate(s)
	}

	for _, layout := range isoInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			out := t.Format(ISOLayout)
			return &out
		}
	}

	return nil
}
