package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/emotions"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/report"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
)

// RecordInput is what the record editor submits for one day.
type RecordInput struct {
	Day            calendarx.Day
	Rating         int
	Emotions       []string
	NotesByEmotion map[string]string
}

type JournalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewJournalService(db *sql.DB, rm repomanager.RepositoryManager, l logging.Logger) *JournalService {
	return &JournalService{
		db:          db,
		repomanager: rm,
		logger:      l.With("module", "journal"),
		now:         time.Now,
	}
}

// Save validates in and upserts the record for in.Day. Notes for emotions
// that are not selected are dropped and tags are re-extracted.
func (s *JournalService) Save(ctx context.Context, in RecordInput) (*models.JournalRecord, error) {
	if !models.ValidRating(in.Rating) {
		return nil, fmt.Errorf("%w: got %d", common.ErrInvalidRating, in.Rating)
	}
	for _, e := range in.Emotions {
		if _, err := emotions.Lookup(e); err != nil {
			return nil, err
		}
	}

	rec := models.NewRecord(in.Day)
	rec.Rating = in.Rating
	rec.Emotions = append(rec.Emotions, in.Emotions...)
	for e, note := range in.NotesByEmotion {
		rec.NotesByEmotion[e] = note
	}
	rec.Normalize()
	rec.UpdatedAt = s.now().UTC()

	if err := s.repomanager.Records(s.db).Upsert(ctx, rec); err != nil {
		s.logger.Error(ctx, "save record failed", "day", in.Day.String(), "error", err)
		return nil, err
	}
	s.logger.Debug(ctx, "record saved", "day", in.Day.String(), "rating", rec.Rating, "tags", len(rec.AllTags))
	return rec, nil
}

// Get returns common.ErrorNotFound when day has no record.
func (s *JournalService) Get(ctx context.Context, day calendarx.Day) (*models.JournalRecord, error) {
	return s.repomanager.Records(s.db).GetByDay(ctx, day)
}

func (s *JournalService) Delete(ctx context.Context, day calendarx.Day) error {
	if err := s.repomanager.Records(s.db).DeleteByDay(ctx, day); err != nil {
		return err
	}
	s.logger.Info(ctx, "record deleted", "day", day.String())
	return nil
}

// List returns all records in day order.
func (s *JournalService) List(ctx context.Context) ([]models.JournalRecord, error) {
	return s.repomanager.Records(s.db).ListAll(ctx)
}

// ListMonth returns the records of the month containing day.
func (s *JournalService) ListMonth(ctx context.Context, day calendarx.Day) ([]models.JournalRecord, error) {
	from := day.MonthStart()
	to := calendarx.Day{Year: day.Year, Month: day.Month, Day: calendarx.DaysInMonth(day.Year, day.Month)}
	return s.repomanager.Records(s.db).ListRange(ctx, from, to)
}

// Snapshot loads every record into an immutable aggregation input.
func (s *JournalService) Snapshot(ctx context.Context) (report.Snapshot, error) {
	all, err := s.List(ctx)
	if err != nil {
		return report.Snapshot{}, err
	}
	return report.NewSnapshot(all), nil
}
