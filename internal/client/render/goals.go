package render

import (
	"fmt"
	"strings"

	"github.com/itnewcomer/Memento/internal/models"
)

var listTitles = map[models.GoalList]string{
	models.ListExcited: "Excited about",
	models.ListStretch: "Stretch goals",
	models.ListTasks:   "Tasks",
}

// Goal renders a month's checklist with per-list progress.
func Goal(g models.MonthlyGoal) string {
	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("Goals %04d-%02d", g.Year, g.Month)))
	b.WriteString("\n")

	progress := g.Progress()
	for _, l := range []models.GoalList{models.ListExcited, models.ListStretch, models.ListTasks} {
		p := progress[l]
		fmt.Fprintf(&b, "%s %s\n", H2.Render(listTitles[l]), Muted.Render(fmt.Sprintf("%d/%d", p.Done, p.Total)))
		items := g.Items(l)
		if len(items) == 0 {
			b.WriteString(Muted.Render("  (empty)"))
			b.WriteString("\n")
			continue
		}
		for i, it := range items {
			box := "[ ]"
			if it.IsCompleted {
				box = Good.Render("[x]")
			}
			fmt.Fprintf(&b, "  %d. %s %s\n", i+1, box, it.Title)
		}
	}
	if g.LetterToSelf != "" {
		b.WriteString(Panel.Render(g.LetterToSelf))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Reminders renders the reminder settings.
func Reminders(rs models.ReminderSettings) string {
	onOff := func(v bool) string {
		if v {
			return Good.Render("on")
		}
		return Muted.Render("off")
	}
	return strings.Join([]string{
		LabelValue("daily", fmt.Sprintf("%s at %02d:%02d", onOff(rs.DailyEnabled), rs.DailyHour, rs.DailyMinute)),
		LabelValue("monthly", fmt.Sprintf("%s on day %d at %02d:00", onOff(rs.MonthlyEnabled), rs.MonthlyDay, rs.MonthlyHour)),
	}, "\n")
}
