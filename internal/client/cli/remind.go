package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/itnewcomer/Memento/internal/client/render"
)

const remindUsage = "usage: remind | remind daily on|off [HH:MM] | remind monthly on|off [DAY HOUR]"

// Remind shows or edits reminder settings. Delivery is up to the host;
// the CLI only stores preferences and reports the next fire time.
func (a *App) Remind(ctx context.Context, args []string) error {
	rs, err := a.settings.Reminders(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if len(args) < 2 {
			return errors.New(remindUsage)
		}
		on, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		switch args[0] {
		case "daily":
			rs.DailyEnabled = on
			if len(args) > 2 {
				if rs.DailyHour, rs.DailyMinute, err = parseClock(args[2]); err != nil {
					return err
				}
			}
		case "monthly":
			rs.MonthlyEnabled = on
			if len(args) > 2 {
				if rs.MonthlyDay, err = strconv.Atoi(args[2]); err != nil {
					return errors.New(remindUsage)
				}
			}
			if len(args) > 3 {
				if rs.MonthlyHour, err = strconv.Atoi(args[3]); err != nil {
					return errors.New(remindUsage)
				}
			}
		default:
			return errors.New(remindUsage)
		}
		if err := a.settings.SaveReminders(ctx, rs); err != nil {
			return err
		}
	}

	a.println(render.Reminders(rs))
	now := a.now()
	if next, ok := rs.NextDaily(now); ok {
		a.println(render.LabelValue("next daily", next.Format("2006-01-02 15:04")))
	}
	if next, ok := rs.NextMonthly(now); ok {
		a.println(render.LabelValue("next monthly", next.Format("2006-01-02 15:04")))
	}
	return nil
}
