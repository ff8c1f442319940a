package utils

import "time"

// ValidWeekDate reports whether s is a YYYY-MM-DD calendar date. Week
// identifiers are otherwise opaque strings; nothing computes a date
// range from them.
func ValidWeekDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
