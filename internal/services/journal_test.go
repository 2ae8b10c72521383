package services

import (
	"context"
	"testing"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) calendarx.Day {
	t.Helper()
	d, err := calendarx.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestJournalService_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	fixed := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)
	s.journal.now = func() time.Time { return fixed }

	rec, err := s.journal.Save(ctx, RecordInput{
		Day:      day(t, "2024-01-05"),
		Rating:   4,
		Emotions: []string{"Happy", "Calm", "Happy"},
		NotesByEmotion: map[string]string{
			"Happy": "lunch with #family and #work",
			"Sad":   "not selected #ignored",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Calm", "Happy"}, rec.Emotions)
	assert.NotContains(t, rec.NotesByEmotion, "Sad")
	assert.Equal(t, []string{"#family", "#work"}, rec.TagsByEmotion["Happy"])
	assert.Equal(t, fixed, rec.UpdatedAt)

	got, err := s.journal.Get(ctx, day(t, "2024-01-05"))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, rec.Emotions, got.Emotions)
	assert.Equal(t, []string{"#family", "#work"}, got.AllTags)
}

func TestJournalService_SaveOverwritesDay(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	d := day(t, "2024-02-10")

	_, err := s.journal.Save(ctx, RecordInput{Day: d, Rating: 2})
	require.NoError(t, err)
	_, err = s.journal.Save(ctx, RecordInput{Day: d, Rating: 5})
	require.NoError(t, err)

	all, err := s.journal.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].Rating)
}

func TestJournalService_SaveRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.journal.Save(ctx, RecordInput{Day: day(t, "2024-01-01"), Rating: 0})
	require.ErrorIs(t, err, common.ErrInvalidRating)

	_, err = s.journal.Save(ctx, RecordInput{Day: day(t, "2024-01-01"), Rating: 6})
	require.ErrorIs(t, err, common.ErrInvalidRating)

	_, err = s.journal.Save(ctx, RecordInput{Day: day(t, "2024-01-01"), Rating: 3, Emotions: []string{"Hangry"}})
	require.ErrorIs(t, err, common.ErrUnknownEmotion)

	all, err := s.journal.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestJournalService_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	d := day(t, "2024-03-03")

	require.ErrorIs(t, s.journal.Delete(ctx, d), common.ErrorNotFound)

	_, err := s.journal.Save(ctx, RecordInput{Day: d, Rating: 3})
	require.NoError(t, err)
	require.NoError(t, s.journal.Delete(ctx, d))

	_, err = s.journal.Get(ctx, d)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestJournalService_ListMonthAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	for _, in := range []RecordInput{
		{Day: day(t, "2024-01-05"), Rating: 5},
		{Day: day(t, "2024-01-10"), Rating: 3},
		{Day: day(t, "2024-01-31"), Rating: 1},
		{Day: day(t, "2024-02-01"), Rating: 4},
	} {
		_, err := s.journal.Save(ctx, in)
		require.NoError(t, err)
	}

	jan, err := s.journal.ListMonth(ctx, day(t, "2024-01-20"))
	require.NoError(t, err)
	require.Len(t, jan, 3)
	assert.Equal(t, "2024-01-05", jan[0].Day.String())
	assert.Equal(t, "2024-01-31", jan[2].Day.String())

	snap, err := s.journal.Snapshot(ctx)
	require.NoError(t, err)
	dist := snap.Distribution(report.Monthly(day(t, "2024-01-01")))
	assert.Equal(t, [5]int{1, 0, 1, 0, 1}, dist.Counts)
	assert.Equal(t, 3, dist.Total())
}
