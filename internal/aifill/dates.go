package aifill

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxAgeYears bounds relative ages so the result stays a four-digit year.
const maxAgeYears = 100

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	absDateRe   = regexp.MustCompile(`^(\d{4})\s*[-/.年]\s*(\d{1,2})\s*(?:[-/.月]\s*(\d{1,2})\s*[日号]?)?\s*月?$`)
	ageYearsRe  = regexp.MustCompile(`(\d+)\s*岁`)
	ageMonthsRe = regexp.MustCompile(`(\d+)\s*个?月`)
)

// resolveBirthday rewrites a non-ISO birthday expression to YYYY-MM-DD.
// Rules, first match wins: an absolute date with loose separators, "<N>岁",
// "<N>个月" / "<N>月". When nothing matches, or the age exceeds maxAgeYears,
// it returns today and false.
func resolveBirthday(desc string, now time.Time) (string, bool) {
	desc = strings.TrimSpace(desc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if d, ok := parseAbsoluteDate(desc, now.Location()); ok {
		return d.Format(dateLayout), true
	}
	if m := ageYearsRe.FindStringSubmatch(desc); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n <= maxAgeYears {
			return today.AddDate(-n, 0, 0).Format(dateLayout), true
		}
		return today.Format(dateLayout), false
	}
	if m := ageMonthsRe.FindStringSubmatch(desc); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n <= maxAgeYears*12 {
			return today.AddDate(0, -n, 0).Format(dateLayout), true
		}
		return today.Format(dateLayout), false
	}
	return today.Format(dateLayout), false
}

// parseAbsoluteDate accepts 2025/6/8, 2025.6.8, 2025-6-8, 2025年6月8日 and
// 2023年8月 (day defaults to 1). Impossible dates are rejected.
func parseAbsoluteDate(s string, loc *time.Location) (time.Time, bool) {
	m := absDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day := 1
	if m[3] != "" {
		day, _ = strconv.Atoi(m[3])
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
