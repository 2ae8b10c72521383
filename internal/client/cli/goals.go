package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/client/render"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/models"
)

const goalUsage = "usage: goal [YYYY-MM] | goal create [YYYY-MM] | goal add <list> <title> | goal toggle|remove <list> <n> | goal letter"

// activeGoalMonth is the month that add, toggle, remove and letter edit.
func (a *App) activeGoalMonth() calendarx.Day {
	if a.goalMonth.IsZero() {
		return a.today().MonthStart()
	}
	return a.goalMonth
}

// Goal dispatches the goal subcommands.
func (a *App) Goal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.showGoal(ctx, a.activeGoalMonth())
	}

	switch args[0] {
	case "create":
		m, err := dateArg(args, 1, a.activeGoalMonth())
		if err != nil {
			return err
		}
		g, err := a.goals.CreateForMonth(ctx, m.Year, int(m.Month))
		if err != nil {
			return err
		}
		a.goalMonth = m.MonthStart()
		a.println(render.Goal(g))
		return nil

	case "add":
		if len(args) < 3 {
			return errors.New(goalUsage)
		}
		l, err := models.ParseGoalList(args[1])
		if err != nil {
			return err
		}
		return a.editGoal(ctx, func(year, month int) (models.MonthlyGoal, error) {
			return a.goals.AddTask(ctx, year, month, l, strings.Join(args[2:], " "))
		})

	case "toggle", "remove":
		if len(args) != 3 {
			return errors.New(goalUsage)
		}
		l, err := models.ParseGoalList(args[1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid item number %q", args[2])
		}
		if args[0] == "toggle" {
			return a.editGoal(ctx, func(year, month int) (models.MonthlyGoal, error) {
				return a.goals.ToggleTask(ctx, year, month, l, n)
			})
		}
		return a.editGoal(ctx, func(year, month int) (models.MonthlyGoal, error) {
			return a.goals.RemoveTask(ctx, year, month, l, n)
		})

	case "letter":
		letter, err := GetMultiline(a.reader, "Write a letter to your future self", a.out)
		if err != nil {
			return err
		}
		return a.editGoal(ctx, func(year, month int) (models.MonthlyGoal, error) {
			return a.goals.SetLetter(ctx, year, month, letter)
		})
	}

	m, err := parseDate(args[0], a.today())
	if err != nil {
		return errors.New(goalUsage)
	}
	a.goalMonth = m.MonthStart()
	return a.showGoal(ctx, a.goalMonth)
}

func (a *App) showGoal(ctx context.Context, m calendarx.Day) error {
	g, err := a.goals.ForMonth(ctx, m.Year, int(m.Month))
	if errors.Is(err, common.ErrorNotFound) {
		a.println(render.Muted.Render(fmt.Sprintf("no goals for %04d-%02d yet; use 'goal create'", m.Year, int(m.Month))))
		return nil
	}
	if err != nil {
		return err
	}
	a.println(render.Goal(g))
	return nil
}

func (a *App) editGoal(ctx context.Context, fn func(year, month int) (models.MonthlyGoal, error)) error {
	m := a.activeGoalMonth()
	g, err := fn(m.Year, int(m.Month))
	if err != nil {
		return err
	}
	a.println(render.Goal(g))
	return nil
}
