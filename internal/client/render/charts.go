package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/itnewcomer/Memento/internal/report"
)

// segmentWidths splits width cells across counts in proportion, using
// largest remainders so the parts add up to width exactly.
func segmentWidths(counts [5]int, width int) [5]int {
	var out [5]int
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 || width <= 0 {
		return out
	}

	var rem [5]int
	used := 0
	for i, c := range counts {
		out[i] = c * width / total
		rem[i] = c * width % total
		used += out[i]
	}
	for used < width {
		best := -1
		for i := range rem {
			if counts[i] == 0 {
				continue
			}
			if best < 0 || rem[i] > rem[best] {
				best = i
			}
		}
		out[best]++
		rem[best] = -1
		used++
	}
	return out
}

// DistributionBar renders a 100% stacked bar followed by per-rating
// percentages. A width of 0 or less uses the terminal width.
func DistributionBar(dist report.Distribution, width int) string {
	if dist.Total() == 0 {
		return Muted.Render("no entries yet")
	}
	if width <= 0 {
		width = TerminalWidth()
	}

	var b strings.Builder
	widths := segmentWidths(dist.Counts, width)
	for i, w := range widths {
		if w == 0 {
			continue
		}
		b.WriteString(RatingStyle(i + 1).Render(strings.Repeat(" ", w)))
	}
	b.WriteString("\n")

	ratios := dist.Ratios()
	labels := make([]string, 0, 5)
	for i := 4; i >= 0; i-- {
		labels = append(labels, fmt.Sprintf("%s %3.0f%% (%d)", RatingEmoji(i+1), ratios[i]*100, dist.Counts[i]))
	}
	b.WriteString(strings.Join(labels, "  "))
	return b.String()
}

// DailySeries renders one line per day: the day number, a bar and the face.
func DailySeries(points []report.DayValue) string {
	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "%2d %s\n", p.Day, seriesBar(p.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// MonthlySeries renders one line per month.
func MonthlySeries(points []report.MonthValue) string {
	var b strings.Builder
	for _, p := range points {
		name := time.Month(p.Month).String()[:3]
		fmt.Fprintf(&b, "%s %s\n", name, seriesBar(p.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

func seriesBar(v int) string {
	if v == 0 {
		return Muted.Render("·")
	}
	return RatingStyle(v).Render(strings.Repeat(" ", v*2)) + " " + RatingEmoji(v)
}
