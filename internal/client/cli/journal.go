package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itnewcomer/Memento/internal/client/render"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/services"
)

// Record runs the day editor: rating, emotions, then one note per emotion.
// Empty answers keep the stored value.
func (a *App) Record(ctx context.Context, args []string) error {
	day, err := dateArg(args, 0, a.today())
	if err != nil {
		return err
	}

	current, err := a.journal.Get(ctx, day)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		current = models.NewRecord(day)
	case err != nil:
		return err
	default:
		a.println(render.Record(current))
	}

	a.println(render.Legend())
	ratingText, err := keepOrReplace(a.reader, "Rating 1-5", strconv.Itoa(current.Rating), a.out)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil || !models.ValidRating(rating) {
		return fmt.Errorf("%w: %q", common.ErrInvalidRating, ratingText)
	}

	a.println(render.EmotionGrid())
	selText, err := keepOrReplace(a.reader, "Emotions (numbers or names, '-' for none)", strings.Join(current.Emotions, ", "), a.out)
	if err != nil {
		return err
	}
	selected, err := parseEmotionSelection(selText)
	if err != nil {
		return err
	}

	notes := make(map[string]string, len(selected))
	for _, e := range selected {
		note, err := keepOrReplace(a.reader, fmt.Sprintf("Note for %s (#tags welcome)", e), current.NotesByEmotion[e], a.out)
		if err != nil {
			return err
		}
		if note != "" {
			notes[e] = note
		}
	}

	rec, err := a.journal.Save(ctx, services.RecordInput{
		Day:            day,
		Rating:         rating,
		Emotions:       selected,
		NotesByEmotion: notes,
	})
	if err != nil {
		return err
	}
	a.println(render.Good.Render("saved"))
	a.println(render.Record(rec))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	day, err := dateArg(args, 0, a.today())
	if err != nil {
		return err
	}
	rec, err := a.journal.Get(ctx, day)
	if errors.Is(err, common.ErrorNotFound) {
		a.println(render.Muted.Render("nothing recorded on " + day.String()))
		return nil
	}
	if err != nil {
		return err
	}
	a.println(render.Record(rec))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	day, err := dateArg(args, 0, a.today())
	if err != nil {
		return err
	}
	if err := a.journal.Delete(ctx, day); err != nil {
		return err
	}
	a.println("deleted " + day.String())
	return nil
}

// List prints the entries of a month, oldest first.
func (a *App) List(ctx context.Context, args []string) error {
	day, err := dateArg(args, 0, a.today())
	if err != nil {
		return err
	}
	recs, err := a.journal.ListMonth(ctx, day)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		a.println(render.Muted.Render(fmt.Sprintf("no entries in %04d-%02d", day.Year, int(day.Month))))
		return nil
	}
	for i := range recs {
		a.println(render.RecordLine(&recs[i]))
	}
	return nil
}
