// Package models defines the journal record, monthly goal and reminder
// types shared by the CLI, the report server and the backup format.
package models

import (
	"sort"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/tags"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// JournalRecord is one day's mood entry. Day is the natural key.
type JournalRecord struct {
	Day    calendarx.Day `json:"day" yaml:"day"`
	Rating int           `json:"rating" yaml:"rating"`

	// Emotions is kept sorted and free of duplicates.
	Emotions []string `json:"emotions" yaml:"emotions"`

	NotesByEmotion map[string]string   `json:"notesByEmotion" yaml:"notesByEmotion"`
	TagsByEmotion  map[string][]string `json:"tagsByEmotion" yaml:"tagsByEmotion"`

	// AllTags is derived from TagsByEmotion and never edited directly.
	AllTags []string `json:"-" yaml:"-"`

	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewRecord returns an empty record for day with the default rating.
func NewRecord(day calendarx.Day) *JournalRecord {
	return &JournalRecord{
		Day:            day,
		Rating:         DefaultRating,
		Emotions:       []string{},
		NotesByEmotion: map[string]string{},
		TagsByEmotion:  map[string][]string{},
		AllTags:        []string{},
	}
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

func (r *JournalRecord) HasEmotion(name string) bool {
	i := sort.SearchStrings(r.Emotions, name)
	return i < len(r.Emotions) && r.Emotions[i] == name
}

// Normalize brings a record into its stored shape: emotions deduplicated
// and sorted, notes kept only for selected emotions, tags re-extracted
// from each note and AllTags recomputed.
func (r *JournalRecord) Normalize() {
	r.Emotions = tags.Set(r.Emotions)

	notes := make(map[string]string, len(r.Emotions))
	byEmotion := make(map[string][]string, len(r.Emotions))
	for _, e := range r.Emotions {
		note, ok := r.NotesByEmotion[e]
		if !ok {
			continue
		}
		notes[e] = note
		if found := tags.Extract(note); len(found) > 0 {
			byEmotion[e] = tags.Set(found)
		}
	}
	r.NotesByEmotion = notes
	r.TagsByEmotion = byEmotion
	r.RefreshAllTags()
}

// RefreshAllTags recomputes AllTags from TagsByEmotion.
func (r *JournalRecord) RefreshAllTags() {
	r.AllTags = tags.Union(r.TagsByEmotion)
}
