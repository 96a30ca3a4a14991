package apod

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatDisplayDate turns a feed date in YYYY-MM-DD form into a short
// human-readable label such as "Oct 27, 2025". Anything that does not match
// the expected shape is returned unchanged so malformed feed data stays
// visible instead of disappearing. Out-of-range months are clamped into
// the valid range rather than panicking on bad input.
func FormatDisplayDate(date string) string {
	if !isoDatePattern.MatchString(date) {
		return date
	}
	year, _ := strconv.Atoi(date[:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	idx := month - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 11 {
		idx = 11
	}
	return fmt.Sprintf("%s %d, %d", monthAbbrevs[idx], day, year)
}
