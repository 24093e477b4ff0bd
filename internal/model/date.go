package model

import (
	"strings"
)

// FormatDateDDMMYY renders an ISO "YYYY-MM-DD" date as "DD/MM/YY" by string
// splitting, taking the last two digits of the year. Anything that does not
// split into three parts comes back unchanged.
func FormatDateDDMMYY(dateStr string) string {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return dateStr
	}
	year := parts[0]
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return parts[2] + "/" + parts[1] + "/" + year
}
