package booking

import (
	"regexp"
	"time"
)

type dateRange struct {
	from time.Time
	to   time.Time
}

const monthNamePattern = `(january|february|march|april|may|june|july|august|september|sept|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)`

const (
	dayPattern  = `(\d{1,2})(?:st|nd|rd|th)?`
	yearPattern = `(?:,?\s+(\d{4}))?`
	rangeSep    = `\s*(?:to|until|through|till|[-–—])\s*`
)

var (
	isoRangeRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})` + rangeSep + `(\d{4})-(\d{2})-(\d{2})\b`)
	isoDateRe    = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthRangeRe = regexp.MustCompile(`\b` + monthNamePattern + `\s+` + dayPattern + yearPattern + rangeSep + `(?:` + monthNamePattern + `\s+)?` + dayPattern + yearPattern + `\b`)
	monthDateRe  = regexp.MustCompile(`\b` + monthNamePattern + `\s+` + dayPattern + yearPattern + `\b`)
	durationRe   = regexp.MustCompile(`\b(` + countPattern + `)[-\s]+(?:night|day)s?\b`)
	weekdayRe    = regexp.MustCompile(`\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	tomorrowRe   = regexp.MustCompile(`\btomorrow\b`)
	todayRe      = regexp.MustCompile(`\b(?:today|tonight)\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// dateRules are tried in order; the first rule that finds dates decides.
// Explicit ranges beat start-plus-duration, which beats a lone date.
var dateRules = []func(text string, today time.Time) (*dateRange, bool, error){
	parseISORange,
	parseMonthNameRange,
	parseStartWithDuration,
	parseSingleDate,
}

func parseDates(text string, today time.Time) (*dateRange, error) {
	for _, rule := range dateRules {
		r, ok, err := rule(text, today)
		if err != nil {
			return nil, err
		}

		if ok {
			return r, nil
		}
	}

	return nil, errNoDates
}

// makeDate rejects values time.Date would silently normalize, so that
// "February 30" reads as no date rather than March 2.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}

	return d, true
}

// resolveForward picks the nearest occurrence of month/day on or after today.
// The loop skips years where the date does not exist (February 29).
func resolveForward(month time.Month, day int, today time.Time) (time.Time, bool) {
	for year := today.Year(); year <= today.Year()+4; year++ {
		d, ok := makeDate(year, month, day)
		if !ok {
			continue
		}

		if d.Before(today) {
			continue
		}

		return d, true
	}

	return time.Time{}, false
}

func parseISORange(text string, _ time.Time) (*dateRange, bool, error) {
	m := isoRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false, nil
	}

	from, ok := makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	if !ok {
		return nil, false, nil
	}

	to, ok := makeDate(atoi(m[4]), time.Month(atoi(m[5])), atoi(m[6]))
	if !ok {
		return nil, false, nil
	}

	if !to.After(from) {
		return nil, false, errReversedRange
	}

	return &dateRange{from: from, to: to}, true, nil
}

//nolint:cyclop // the year-resolution branches read best in one place
func parseMonthNameRange(text string, today time.Time) (*dateRange, bool, error) {
	m := monthRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false, nil
	}

	fromMonth := monthsByName[m[1]]
	fromDay := atoi(m[2])

	var (
		from time.Time
		ok   bool
	)

	if m[3] != "" {
		from, ok = makeDate(atoi(m[3]), fromMonth, fromDay)
	} else {
		from, ok = resolveForward(fromMonth, fromDay, today)
	}

	if !ok {
		return nil, false, nil
	}

	toMonth := fromMonth
	if m[4] != "" {
		toMonth = monthsByName[m[4]]
	}

	toDay := atoi(m[5])

	var to time.Time

	if m[6] != "" {
		to, ok = makeDate(atoi(m[6]), toMonth, toDay)
		if !ok {
			return nil, false, nil
		}
	} else {
		// The check-out year follows the check-in and wraps into the next
		// year only across a month boundary, so "December 30 to January 2"
		// works while "January 7 to January 5" stays a reversed range.
		to, ok = makeDate(from.Year(), toMonth, toDay)
		if !ok {
			return nil, false, nil
		}

		if !to.After(from) && toMonth < fromMonth {
			to = to.AddDate(1, 0, 0)
		}
	}

	if !to.After(from) {
		return nil, false, errReversedRange
	}

	return &dateRange{from: from, to: to}, true, nil
}

func parseStartWithDuration(text string, today time.Time) (*dateRange, bool, error) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false, nil
	}

	units := parseCount(m[1])

	from, ok := findStartDate(text, today)
	if !ok {
		return nil, false, nil
	}

	to := from.AddDate(0, 0, units)
	if !to.After(from) {
		return nil, false, errReversedRange
	}

	return &dateRange{from: from, to: to}, true, nil
}

func parseSingleDate(text string, today time.Time) (*dateRange, bool, error) {
	from, ok := findStartDate(text, today)
	if !ok {
		return nil, false, nil
	}

	// A single date means one night or one day.
	return &dateRange{from: from, to: from.AddDate(0, 0, 1)}, true, nil
}

func findStartDate(text string, today time.Time) (time.Time, bool) {
	if m := monthDateRe.FindStringSubmatch(text); m != nil {
		if m[3] != "" {
			return makeDate(atoi(m[3]), monthsByName[m[1]], atoi(m[2]))
		}

		return resolveForward(monthsByName[m[1]], atoi(m[2]), today)
	}

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		target := weekdaysByName[m[1]]

		days := int(target-today.Weekday()+7) % 7 //nolint:gomnd
		if days == 0 {
			days = 7
		}

		return today.AddDate(0, 0, days), true
	}

	if tomorrowRe.MatchString(text) {
		return today.AddDate(0, 0, 1), true
	}

	if todayRe.MatchString(text) {
		return today, true
	}

	return time.Time{}, false
}
