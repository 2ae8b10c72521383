// Package records persists journal records, one row per calendar day.
package records

import (
	"context"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/models"
)

// Repository is the record store. Day is the primary key, so Upsert on
// an existing day replaces that row and leaves other days untouched.
type Repository interface {
	Upsert(ctx context.Context, r *models.JournalRecord) error
	// GetByDay returns common.ErrorNotFound when the day has no record.
	GetByDay(ctx context.Context, day calendarx.Day) (*models.JournalRecord, error)
	// DeleteByDay returns common.ErrorNotFound when nothing was deleted.
	DeleteByDay(ctx context.Context, day calendarx.Day) error
	// ListAll returns every record ordered by day ascending.
	ListAll(ctx context.Context) ([]models.JournalRecord, error)
	// ListRange returns records with from <= day <= to, ascending.
	ListRange(ctx context.Context, from, to calendarx.Day) ([]models.JournalRecord, error)
}

type encodedFields struct {
	emotions []byte
	notes    []byte
	tags     []byte
}

func encodeFields(r *models.JournalRecord) (encodedFields, error) {
	var f encodedFields
	var err error
	if f.emotions, err = models.EncodeEmotions(r.Emotions); err != nil {
		return f, err
	}
	if f.notes, err = models.EncodeNotes(r.NotesByEmotion); err != nil {
		return f, err
	}
	if f.tags, err = models.EncodeTagMap(r.TagsByEmotion); err != nil {
		return f, err
	}
	return f, nil
}

func decodeFields(r *models.JournalRecord, f encodedFields) {
	r.Emotions = models.DecodeEmotions(f.emotions)
	r.NotesByEmotion = models.DecodeNotes(f.notes)
	r.TagsByEmotion = models.DecodeTagMap(f.tags)
	r.RefreshAllTags()
}
