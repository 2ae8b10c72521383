package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/emotions"
	"github.com/itnewcomer/Memento/internal/report"
)

// parseDate accepts YYYY-MM-DD, YYYY-MM (first of month) or YYYY
// (January 1st). An empty string means today.
func parseDate(s string, today calendarx.Day) (calendarx.Day, error) {
	switch {
	case s == "" || s == "today":
		return today, nil
	case len(s) == len(calendarx.DayLayout):
		return calendarx.ParseDay(s)
	case len(s) == len(calendarx.MonthLayout):
		return calendarx.ParseMonth(s)
	case len(s) == 4:
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			return calendarx.Day{}, fmt.Errorf("invalid year %q", s)
		}
		return calendarx.Day{Year: y, Month: 1, Day: 1}, nil
	}
	return calendarx.Day{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, YYYY-MM or YYYY)", s)
}

// dateArg parses args[i] with parseDate, or returns today when absent.
func dateArg(args []string, i int, today calendarx.Day) (calendarx.Day, error) {
	if i >= len(args) {
		return today, nil
	}
	return parseDate(args[i], today)
}

// scopeArgs reads "month|year [date]".
func scopeArgs(args []string, today calendarx.Day) (report.Scope, error) {
	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}
	d, err := dateArg(args, 1, today)
	if err != nil {
		return report.Scope{}, err
	}
	return report.ParseScope(kind, d)
}

// parseEmotionSelection turns "3, Calm 17" into emotion names. Numbers
// index the picker grid from 1; names match case-insensitively.
func parseEmotionSelection(input string) ([]string, error) {
	byLower := make(map[string]string)
	var flat []string
	for _, row := range emotions.Grid() {
		for _, e := range row {
			flat = append(flat, e.Name)
			byLower[strings.ToLower(e.Name)] = e.Name
		}
	}

	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			if n < 1 || n > len(flat) {
				return nil, fmt.Errorf("no emotion number %d", n)
			}
			out = append(out, flat[n-1])
			continue
		}
		name, ok := byLower[strings.ToLower(f)]
		if !ok {
			return nil, fmt.Errorf("unknown emotion %q", f)
		}
		out = append(out, name)
	}
	return out, nil
}

// parseClock reads HH:MM.
func parseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	if hour, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid hour %q", h)
	}
	if minute, err = strconv.Atoi(m); err != nil {
		return 0, 0, fmt.Errorf("invalid minute %q", m)
	}
	return hour, minute, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
