// Package ptbr formats dates the way Brazilian Portuguese pages display them.
package ptbr

import (
	"fmt"
	"time"
)

var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var months = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// LongDate returns the long form with weekday, e.g. "sexta-feira, 16 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()], t.Year())
}

// ShortDate returns dd/mm/yyyy.
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// Year returns the four-digit year.
func Year(t time.Time) string {
	return t.Format("2006")
}
