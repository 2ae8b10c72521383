package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/report"
)

// Calendar renders the month containing month as a Sunday-first grid.
// Days with a rating are colored; the rest stay plain.
func Calendar(month calendarx.Day, idx report.RatingIndex) string {
	var b strings.Builder

	header := fmt.Sprintf("%s %d", month.Month, month.Year)
	b.WriteString(Title.Render(header))
	b.WriteString("\n")
	b.WriteString(Muted.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	days := calendarx.MonthDays(month)
	lead := int(days[0].Weekday() - time.Sunday)
	b.WriteString(strings.Repeat("    ", lead))

	col := lead
	for _, d := range days {
		cell := fmt.Sprintf(" %2d ", d.Day)
		b.WriteString(RatingStyle(idx[d]).Render(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	b.WriteString(Legend())
	return b.String()
}

// Legend lists the rating colors.
func Legend() string {
	parts := make([]string, 0, 5)
	for r := 1; r <= 5; r++ {
		parts = append(parts, RatingStyle(r).Render(fmt.Sprintf(" %d ", r))+" "+RatingEmoji(r))
	}
	return strings.Join(parts, "  ")
}
