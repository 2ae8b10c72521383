package models

import (
	"testing"
	"time"

	"github.com/itnewcomer/Memento/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultReminderSettings().Validate())

	bad := []func(*ReminderSettings){
		func(s *ReminderSettings) { s.DailyHour = 24 },
		func(s *ReminderSettings) { s.DailyMinute = 60 },
		func(s *ReminderSettings) { s.MonthlyDay = 29 },
		func(s *ReminderSettings) { s.MonthlyDay = 0 },
		func(s *ReminderSettings) { s.MonthlyHour = -1 },
	}
	for i, mutate := range bad {
		s := DefaultReminderSettings()
		mutate(&s)
		assert.ErrorIs(t, s.Validate(), common.ErrInvalidSettings, "case %d", i)
	}
}

func TestNextDaily(t *testing.T) {
	s := DefaultReminderSettings()
	now := time.Date(2024, time.March, 3, 20, 0, 0, 0, time.UTC)

	_, ok := s.NextDaily(now)
	assert.False(t, ok)

	s.DailyEnabled = true
	next, ok := s.NextDaily(now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 3, 21, 0, 0, 0, time.UTC), next)

	next, _ = s.NextDaily(time.Date(2024, time.March, 3, 21, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 4, 21, 0, 0, 0, time.UTC), next)
}

func TestNextMonthly(t *testing.T) {
	s := DefaultReminderSettings()
	s.MonthlyEnabled = true
	s.MonthlyDay = 28

	next, ok := s.NextMonthly(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC), next)

	next, _ = s.NextMonthly(time.Date(2024, time.December, 28, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.January, 28, 9, 0, 0, 0, time.UTC), next)
}
