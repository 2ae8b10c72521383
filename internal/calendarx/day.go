// Package calendarx provides day-granularity calendar keys and the month
// and year iteration used by journal aggregation.
package calendarx

import (
	"fmt"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Day identifies a calendar date with the time of day discarded.
// It is comparable and used as a map key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf normalizes t to its calendar date in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the local calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// ParseMonth parses a YYYY-MM string and returns the first day of it.
func ParseMonth(s string) (Day, error) {
	t, err := time.ParseInLocation(MonthLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of d in loc. A nil loc means time.Local.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays moves d by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// MonthStart returns the first day of d's month.
func (d Day) MonthStart() Day {
	return Day{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth is Gregorian and leap-year aware.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays returns every day of the month containing d, in order.
func MonthDays(d Day) []Day {
	n := DaysInMonth(d.Year, d.Month)
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Year: d.Year, Month: d.Month, Day: i + 1}
	}
	return days
}

// YearMonths returns the first day of each month of year.
func YearMonths(year int) []Day {
	months := make([]Day, 12)
	for i := range months {
		months[i] = Day{Year: year, Month: time.Month(i + 1), Day: 1}
	}
	return months
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
