package services

import (
	"context"
	"testing"

	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNopLogger() logging.Logger { return logging.NewNop() }

func TestSettingsService_Defaults(t *testing.T) {
	s := newTestServices(t)
	rs, err := s.settings.Reminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultReminderSettings(), rs)
}

func TestSettingsService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	want := models.ReminderSettings{
		DailyEnabled: true, DailyHour: 22, DailyMinute: 30,
		MonthlyEnabled: true, MonthlyDay: 15, MonthlyHour: 8,
	}
	require.NoError(t, s.settings.SaveReminders(ctx, want))

	got, err := s.settings.Reminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_SaveRejectsInvalid(t *testing.T) {
	s := newTestServices(t)
	bad := models.DefaultReminderSettings()
	bad.MonthlyDay = 31
	require.ErrorIs(t, s.settings.SaveReminders(context.Background(), bad), common.ErrInvalidSettings)
}

func TestSettingsService_UnusableStoredValue(t *testing.T) {
	ctx := context.Background()
	db, rm := openTestDB(t)
	require.NoError(t, rm.Metadata(db).Set(ctx, RemindersKey, []byte(`{"dailyHour":99}`)))

	rs, err := NewSettingsService(db, rm, newNopLogger()).Reminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultReminderSettings(), rs)
}
