package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/cryptox"
	"github.com/itnewcomer/Memento/internal/dbx"
	"github.com/itnewcomer/Memento/internal/emotions"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
	"gopkg.in/yaml.v3"
)

// ArchiveVersion is bumped when the archive layout changes incompatibly.
const ArchiveVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml". An empty name falls back
// to the extension of path, then to JSON.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
		if name == "" || name == "bin" || name == "enc" {
			return FormatJSON, nil
		}
	}
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, name)
}

// Archive is a full export of the journal.
type Archive struct {
	Version    int                     `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exportedAt" yaml:"exportedAt"`
	Records    []models.JournalRecord  `json:"records" yaml:"records"`
	Goals      []models.MonthlyGoal    `json:"goals" yaml:"goals"`
	Reminders  models.ReminderSettings `json:"reminders" yaml:"reminders"`
}

type BackupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	journal     *JournalService
	goals       *GoalService
	settings    *SettingsService
	logger      logging.Logger
}

func NewBackupService(db *sql.DB, rm repomanager.RepositoryManager, j *JournalService, g *GoalService, st *SettingsService, l logging.Logger) *BackupService {
	return &BackupService{
		db:          db,
		repomanager: rm,
		journal:     j,
		goals:       g,
		settings:    st,
		logger:      l.With("module", "backup"),
	}
}

func (s *BackupService) Export(ctx context.Context) (Archive, error) {
	recs, err := s.journal.List(ctx)
	if err != nil {
		return Archive{}, fmt.Errorf("export records: %w", err)
	}
	goals, err := s.goals.Load(ctx)
	if err != nil {
		return Archive{}, fmt.Errorf("export goals: %w", err)
	}
	reminders, err := s.settings.Reminders(ctx)
	if err != nil {
		return Archive{}, fmt.Errorf("export reminders: %w", err)
	}
	return Archive{
		Version:    ArchiveVersion,
		ExportedAt: time.Now().UTC(),
		Records:    recs,
		Goals:      goals,
		Reminders:  reminders,
	}, nil
}

// Encode serializes a in format f. A non-empty passphrase seals the
// result so it can be stored off-device.
func Encode(a Archive, f Format, passphrase []byte) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(a, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(a)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encode archive: %w", err)
	}
	if len(passphrase) == 0 {
		return data, nil
	}
	return cryptox.Seal(data, passphrase)
}

// Decode reverses Encode. Sealed input requires the passphrase it was
// sealed with.
func Decode(data []byte, f Format, passphrase []byte) (Archive, error) {
	if cryptox.IsSealed(data) {
		plain, err := cryptox.Open(data, passphrase)
		if err != nil {
			return Archive{}, err
		}
		data = plain
	}

	var a Archive
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &a)
	case FormatYAML:
		err = yaml.Unmarshal(data, &a)
	default:
		return Archive{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Archive{}, fmt.Errorf("decode archive: %w", err)
	}
	if a.Version != ArchiveVersion {
		return Archive{}, fmt.Errorf("%w: archive version %d", common.ErrUnsupportedFormat, a.Version)
	}
	a.Goals = models.NormalizeGoals(a.Goals)
	return a, nil
}

// validateArchive rejects anything Save or CreateForMonth would reject:
// bad days, ratings and emotions, out-of-range or duplicate goal months and
// overfull goal lists.
func validateArchive(a Archive) error {
	for i := range a.Records {
		rec := &a.Records[i]
		if parsed, err := calendarx.ParseDay(rec.Day.String()); rec.Day.IsZero() || err != nil || parsed != rec.Day {
			return fmt.Errorf("record %d: %w: %q", i, common.ErrInvalidDay, rec.Day.String())
		}
		if !models.ValidRating(rec.Rating) {
			return fmt.Errorf("record %s: %w", rec.Day, common.ErrInvalidRating)
		}
		for _, e := range rec.Emotions {
			if _, err := emotions.Lookup(e); err != nil {
				return fmt.Errorf("record %s: %w", rec.Day, err)
			}
		}
	}

	seen := make(map[[2]int]struct{}, len(a.Goals))
	for i := range a.Goals {
		g := &a.Goals[i]
		if err := g.Validate(); err != nil {
			return err
		}
		key := [2]int{g.Year, g.Month}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%04d-%02d: %w", g.Year, g.Month, common.ErrGoalExists)
		}
		seen[key] = struct{}{}
	}

	return a.Reminders.Validate()
}

// Restore merges a into the store in one transaction. Records are
// upserted by day; goals and reminders are replaced.
func (s *BackupService) Restore(ctx context.Context, a Archive) error {
	if err := validateArchive(a); err != nil {
		return err
	}
	goalsBlob, err := models.EncodeGoals(a.Goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	remindersBlob, err := json.Marshal(a.Reminders)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		recs := s.repomanager.Records(tx)
		for i := range a.Records {
			rec := a.Records[i]
			rec.Normalize()
			if err := recs.Upsert(ctx, &rec); err != nil {
				return err
			}
		}
		meta := s.repomanager.Metadata(tx)
		if err := meta.Set(ctx, GoalsKey, goalsBlob); err != nil {
			return err
		}
		return meta.Set(ctx, RemindersKey, remindersBlob)
	})
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	s.logger.Info(ctx, "archive restored", "records", len(a.Records), "goals", len(a.Goals))
	return nil
}
