package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
)

// RemindersKey is the settings key holding reminder preferences.
const RemindersKey = "reminders"

type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSettingsService(db *sql.DB, rm repomanager.RepositoryManager, l logging.Logger) *SettingsService {
	return &SettingsService{db: db, repomanager: rm, logger: l.With("module", "settings")}
}

// Reminders returns stored settings, or the defaults when nothing usable
// is stored.
func (s *SettingsService) Reminders(ctx context.Context) (models.ReminderSettings, error) {
	data, err := s.repomanager.Metadata(s.db).Get(ctx, RemindersKey)
	if err != nil {
		return models.ReminderSettings{}, err
	}
	if len(data) == 0 {
		return models.DefaultReminderSettings(), nil
	}
	rs := models.DefaultReminderSettings()
	if err := json.Unmarshal(data, &rs); err != nil || rs.Validate() != nil {
		s.logger.Warn(ctx, "stored reminder settings are unusable, using defaults")
		return models.DefaultReminderSettings(), nil
	}
	return rs, nil
}

func (s *SettingsService) SaveReminders(ctx context.Context, rs models.ReminderSettings) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	return s.repomanager.Metadata(s.db).Set(ctx, RemindersKey, data)
}
