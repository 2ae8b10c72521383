package services

import (
	"context"
	"testing"

	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/cryptox"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name, path string
		want       Format
		wantErr    bool
	}{
		{name: "json", want: FormatJSON},
		{name: "YAML", want: FormatYAML},
		{name: "yml", want: FormatYAML},
		{path: "backup.yaml", want: FormatYAML},
		{path: "backup.json", want: FormatJSON},
		{path: "backup", want: FormatJSON},
		{name: "xml", wantErr: true},
		{path: "backup.csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name+tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.name, tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func seedJournal(t *testing.T, s testServices) {
	t.Helper()
	ctx := context.Background()
	_, err := s.journal.Save(ctx, RecordInput{
		Day:            day(t, "2024-01-05"),
		Rating:         5,
		Emotions:       []string{"Joy"},
		NotesByEmotion: map[string]string{"Joy": "beach #trip"},
	})
	require.NoError(t, err)
	_, err = s.journal.Save(ctx, RecordInput{Day: day(t, "2024-01-10"), Rating: 3})
	require.NoError(t, err)

	_, err = s.goals.CreateForMonth(ctx, 2024, 1)
	require.NoError(t, err)
	_, err = s.goals.AddTask(ctx, 2024, 1, models.ListTasks, "swim")
	require.NoError(t, err)

	rs := models.DefaultReminderSettings()
	rs.DailyEnabled = true
	require.NoError(t, s.settings.SaveReminders(ctx, rs))
}

func TestBackup_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		for _, pass := range []string{"", "hunter2"} {
			t.Run(string(f)+"/"+pass, func(t *testing.T) {
				ctx := context.Background()
				src := newTestServices(t)
				seedJournal(t, src)

				a, err := src.backup.Export(ctx)
				require.NoError(t, err)
				require.Len(t, a.Records, 2)

				data, err := Encode(a, f, []byte(pass))
				require.NoError(t, err)
				assert.Equal(t, pass != "", cryptox.IsSealed(data))

				back, err := Decode(data, f, []byte(pass))
				require.NoError(t, err)

				dst := newTestServices(t)
				require.NoError(t, dst.backup.Restore(ctx, back))

				recs, err := dst.journal.List(ctx)
				require.NoError(t, err)
				require.Len(t, recs, 2)
				assert.Equal(t, 5, recs[0].Rating)
				assert.Equal(t, []string{"#trip"}, recs[0].AllTags)

				g, err := dst.goals.ForMonth(ctx, 2024, 1)
				require.NoError(t, err)
				require.Len(t, g.Tasks, 1)
				assert.Equal(t, "swim", g.Tasks[0].Title)

				rs, err := dst.settings.Reminders(ctx)
				require.NoError(t, err)
				assert.True(t, rs.DailyEnabled)
			})
		}
	}
}

func TestDecode_WrongPassphrase(t *testing.T) {
	data, err := Encode(Archive{Version: ArchiveVersion, Reminders: models.DefaultReminderSettings()}, FormatJSON, []byte("right"))
	require.NoError(t, err)

	_, err = Decode(data, FormatJSON, []byte("wrong"))
	require.ErrorIs(t, err, cryptox.ErrWrongPassphrase)
}

func TestDecode_RejectsUnknownVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":42}`), FormatJSON, nil)
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestRestore_RejectsInvalidRatingAtomically(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	good := models.NewRecord(day(t, "2024-05-01"))
	good.Rating = 4
	bad := models.NewRecord(day(t, "2024-05-02"))
	bad.Rating = 9

	err := s.backup.Restore(ctx, Archive{
		Version:   ArchiveVersion,
		Records:   []models.JournalRecord{*good, *bad},
		Reminders: models.DefaultReminderSettings(),
	})
	require.ErrorIs(t, err, common.ErrInvalidRating)

	recs, err := s.journal.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRestore_RejectsRecordWithoutDay(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	a, err := Decode([]byte(`{"version":1,"records":[{"rating":4}],"goals":[],"reminders":{}}`), FormatJSON, nil)
	require.NoError(t, err)
	a.Reminders = models.DefaultReminderSettings()

	err = s.backup.Restore(ctx, a)
	require.ErrorIs(t, err, common.ErrInvalidDay)

	recs, err := s.journal.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
	_, err = s.journal.Snapshot(ctx)
	require.NoError(t, err)
}

func TestRestore_RejectsImpossibleDay(t *testing.T) {
	rec := models.NewRecord(day(t, "2024-02-01"))
	rec.Rating = 3
	rec.Day.Day = 30

	err := newTestServices(t).backup.Restore(context.Background(), Archive{
		Version:   ArchiveVersion,
		Records:   []models.JournalRecord{*rec},
		Reminders: models.DefaultReminderSettings(),
	})
	require.ErrorIs(t, err, common.ErrInvalidDay)
}

func TestRestore_RejectsUnknownEmotion(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	good := models.NewRecord(day(t, "2024-05-01"))
	good.Rating = 4
	bad := models.NewRecord(day(t, "2024-05-02"))
	bad.Rating = 2
	bad.Emotions = []string{"NotAnEmotion"}
	bad.NotesByEmotion["NotAnEmotion"] = "#t"

	err := s.backup.Restore(ctx, Archive{
		Version:   ArchiveVersion,
		Records:   []models.JournalRecord{*good, *bad},
		Reminders: models.DefaultReminderSettings(),
	})
	require.ErrorIs(t, err, common.ErrUnknownEmotion)

	recs, err := s.journal.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRestore_RejectsInvalidGoals(t *testing.T) {
	full := models.NewMonthlyGoal(2024, 2)
	for i := 0; i <= models.MaxExcitedGoals; i++ {
		full.ExcitedGoals = append(full.ExcitedGoals, models.GoalTask{Title: "x"})
	}
	blank := models.NewMonthlyGoal(2024, 3)
	blank.Tasks = append(blank.Tasks, models.GoalTask{Title: "  "})

	tests := []struct {
		name  string
		goals []models.MonthlyGoal
		want  error
	}{
		{"duplicate month", []models.MonthlyGoal{models.NewMonthlyGoal(2024, 1), models.NewMonthlyGoal(2024, 1)}, common.ErrGoalExists},
		{"month 13", []models.MonthlyGoal{models.NewMonthlyGoal(2024, 13)}, common.ErrInvalidGoal},
		{"month 0", []models.MonthlyGoal{models.NewMonthlyGoal(2024, 0)}, common.ErrInvalidGoal},
		{"over cap", []models.MonthlyGoal{full}, common.ErrGoalListFull},
		{"empty title", []models.MonthlyGoal{blank}, common.ErrEmptyTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestServices(t)

			_, err := s.goals.CreateForMonth(ctx, 2023, 12)
			require.NoError(t, err)

			err = s.backup.Restore(ctx, Archive{
				Version:   ArchiveVersion,
				Goals:     tt.goals,
				Reminders: models.DefaultReminderSettings(),
			})
			require.ErrorIs(t, err, tt.want)

			goals, err := s.goals.Load(ctx)
			require.NoError(t, err)
			require.Len(t, goals, 1, "existing goals must survive a rejected restore")
			assert.True(t, goals[0].Is(2023, 12))
		})
	}
}
