package models

import (
	"fmt"
	"time"

	"github.com/itnewcomer/Memento/internal/common"
)

// ReminderSettings holds the daily journaling reminder and the monthly
// goal-review reminder. Delivery is left to the host system.
type ReminderSettings struct {
	DailyEnabled bool `json:"dailyEnabled" yaml:"dailyEnabled"`
	DailyHour    int  `json:"dailyHour" yaml:"dailyHour"`
	DailyMinute  int  `json:"dailyMinute" yaml:"dailyMinute"`

	MonthlyEnabled bool `json:"monthlyEnabled" yaml:"monthlyEnabled"`
	MonthlyDay     int  `json:"monthlyDay" yaml:"monthlyDay"` // 1..28 so every month has it
	MonthlyHour    int  `json:"monthlyHour" yaml:"monthlyHour"`
}

func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		DailyHour:   21,
		MonthlyDay:  1,
		MonthlyHour: 9,
	}
}

func (s ReminderSettings) Validate() error {
	switch {
	case s.DailyHour < 0 || s.DailyHour > 23:
		return fmt.Errorf("%w: daily hour %d", common.ErrInvalidSettings, s.DailyHour)
	case s.DailyMinute < 0 || s.DailyMinute > 59:
		return fmt.Errorf("%w: daily minute %d", common.ErrInvalidSettings, s.DailyMinute)
	case s.MonthlyDay < 1 || s.MonthlyDay > 28:
		return fmt.Errorf("%w: monthly day %d", common.ErrInvalidSettings, s.MonthlyDay)
	case s.MonthlyHour < 0 || s.MonthlyHour > 23:
		return fmt.Errorf("%w: monthly hour %d", common.ErrInvalidSettings, s.MonthlyHour)
	}
	return nil
}

// NextDaily returns the first daily fire time strictly after now.
// ok is false when the daily reminder is off.
func (s ReminderSettings) NextDaily(now time.Time) (next time.Time, ok bool) {
	if !s.DailyEnabled {
		return time.Time{}, false
	}
	y, m, d := now.Date()
	next = time.Date(y, m, d, s.DailyHour, s.DailyMinute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m, d+1, s.DailyHour, s.DailyMinute, 0, 0, now.Location())
	}
	return next, true
}

// NextMonthly returns the first monthly fire time strictly after now.
func (s ReminderSettings) NextMonthly(now time.Time) (next time.Time, ok bool) {
	if !s.MonthlyEnabled {
		return time.Time{}, false
	}
	y, m, _ := now.Date()
	next = time.Date(y, m, s.MonthlyDay, s.MonthlyHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m+1, s.MonthlyDay, s.MonthlyHour, 0, 0, 0, now.Location())
	}
	return next, true
}
