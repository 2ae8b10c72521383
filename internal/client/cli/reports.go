package cli

import (
	"context"
	"fmt"

	"github.com/itnewcomer/Memento/internal/client/render"
	"github.com/itnewcomer/Memento/internal/report"
)

func (a *App) Calendar(ctx context.Context, args []string) error {
	day, err := dateArg(args, 0, a.today())
	if err != nil {
		return err
	}
	snap, err := a.journal.Snapshot(ctx)
	if err != nil {
		return err
	}
	a.println(render.Calendar(day, snap.Ratings))
	return nil
}

// Report prints the rating series and the distribution for a month or
// a year.
func (a *App) Report(ctx context.Context, args []string) error {
	scope, err := scopeArgs(args, a.today())
	if err != nil {
		return err
	}
	snap, err := a.journal.Snapshot(ctx)
	if err != nil {
		return err
	}

	a.println(render.Title.Render("Mood report " + scope.String()))
	if scope.Kind == report.ScopeYear {
		a.println(render.MonthlySeries(snap.MonthlySeries(scope.Anchor.Year)))
	} else {
		a.println(render.DailySeries(snap.DailySeries(scope.Anchor)))
	}
	dist := snap.Distribution(scope)
	a.println(render.H2.Render(fmt.Sprintf("Distribution (%d days)", dist.Total())))
	a.println(render.DistributionBar(dist, 0))
	return nil
}

func (a *App) Tags(ctx context.Context, args []string) error {
	scope, err := scopeArgs(args, a.today())
	if err != nil {
		return err
	}
	snap, err := a.journal.Snapshot(ctx)
	if err != nil {
		return err
	}
	a.println(render.Title.Render("Tags " + scope.String()))
	a.println(render.TagIndex(snap.TagIndex(scope)))
	if m := render.TagMatrix(snap.TagEmotionMatrix(scope)); m != "" {
		a.println(render.H2.Render("By emotion"))
		a.println(m)
	}
	return nil
}
