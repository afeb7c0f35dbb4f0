package utils

import "time"

const ISODateLayout = "2006-01-02"

// FormatISODate renders a date as YYYY-MM-DD, the format every booking
// provider and prompt template expects.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
