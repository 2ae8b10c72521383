package report

import (
	"fmt"

	"github.com/itnewcomer/Memento/internal/calendarx"
)

type ScopeKind int

const (
	ScopeMonth ScopeKind = iota
	ScopeYear
)

func (k ScopeKind) String() string {
	if k == ScopeYear {
		return "year"
	}
	return "month"
}

// Scope is a reporting window: the month or the year containing Anchor.
type Scope struct {
	Kind   ScopeKind
	Anchor calendarx.Day
}

func Monthly(d calendarx.Day) Scope { return Scope{Kind: ScopeMonth, Anchor: d} }

func Yearly(d calendarx.Day) Scope { return Scope{Kind: ScopeYear, Anchor: d} }

// ParseScope accepts "month" or "year".
func ParseScope(kind string, d calendarx.Day) (Scope, error) {
	switch kind {
	case "month", "monthly", "":
		return Monthly(d), nil
	case "year", "yearly":
		return Yearly(d), nil
	}
	return Scope{}, fmt.Errorf("unknown scope %q", kind)
}

func (s Scope) Contains(d calendarx.Day) bool {
	if d.Year != s.Anchor.Year {
		return false
	}
	return s.Kind == ScopeYear || d.Month == s.Anchor.Month
}

// Days enumerates the scope's days in order. A year is the
// concatenation of its twelve months.
func (s Scope) Days() []calendarx.Day {
	if s.Kind == ScopeMonth {
		return calendarx.MonthDays(s.Anchor)
	}
	days := make([]calendarx.Day, 0, 366)
	for _, m := range calendarx.YearMonths(s.Anchor.Year) {
		days = append(days, calendarx.MonthDays(m)...)
	}
	return days
}

func (s Scope) String() string {
	if s.Kind == ScopeYear {
		return fmt.Sprintf("%04d", s.Anchor.Year)
	}
	return fmt.Sprintf("%04d-%02d", s.Anchor.Year, int(s.Anchor.Month))
}
