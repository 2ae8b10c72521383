package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/itnewcomer/Memento/internal/emotions"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/report"
)

// Record renders one day's entry with its notes and tags.
func Record(rec *models.JournalRecord) string {
	var b strings.Builder
	b.WriteString(Title.Render(rec.Day.String()))
	b.WriteString("  ")
	b.WriteString(RatingStyle(rec.Rating).Render(fmt.Sprintf(" %d ", rec.Rating)))
	b.WriteString(" " + RatingEmoji(rec.Rating))
	b.WriteString("\n")

	if len(rec.Emotions) == 0 {
		b.WriteString(Muted.Render("no emotions selected"))
		return b.String()
	}
	for _, e := range rec.Emotions {
		b.WriteString(Swatch(" "+e+" ", emotions.Color(e)))
		if note := rec.NotesByEmotion[e]; note != "" {
			b.WriteString(" " + note)
		}
		b.WriteString("\n")
	}
	if len(rec.AllTags) > 0 {
		b.WriteString(LabelValue("tags", strings.Join(rec.AllTags, " ")))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RecordLine is the one-line form used by list.
func RecordLine(rec *models.JournalRecord) string {
	line := fmt.Sprintf("%s %s %d", rec.Day, RatingEmoji(rec.Rating), rec.Rating)
	if len(rec.Emotions) > 0 {
		line += "  " + strings.Join(rec.Emotions, ", ")
	}
	if len(rec.AllTags) > 0 {
		line += "  " + Muted.Render(strings.Join(rec.AllTags, " "))
	}
	return line
}

// EmotionGrid renders the 6x6 picker with one-based numbers.
func EmotionGrid() string {
	var b strings.Builder
	n := 1
	for _, row := range emotions.Grid() {
		cells := make([]string, 0, len(row))
		for _, e := range row {
			cells = append(cells, Swatch(fmt.Sprintf("%2d %-12s", n, e.Name), e.Color))
			n++
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// TagIndex renders every tag with the days it was used on and the
// emotions it was attached to that day.
func TagIndex(idx report.TagIndex) string {
	tags := idx.Tags()
	if len(tags) == 0 {
		return Muted.Render("no tags in this period")
	}

	var b strings.Builder
	for _, tag := range tags {
		recs := idx[tag]
		b.WriteString(H2.Render(fmt.Sprintf("%s (%d)", tag, len(recs))))
		b.WriteString("\n")
		for i := range recs {
			var with []string
			for _, e := range recs[i].Emotions {
				for _, t := range recs[i].TagsByEmotion[e] {
					if t == tag {
						with = append(with, e)
						break
					}
				}
			}
			fmt.Fprintf(&b, "  %s %s %s\n", recs[i].Day, RatingEmoji(recs[i].Rating), strings.Join(with, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// TagMatrix renders one line per tag listing how often each emotion
// carried it, most frequent first.
func TagMatrix(m map[string]map[string]int) string {
	if len(m) == 0 {
		return ""
	}
	tags := make([]string, 0, len(m))
	for t := range m {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	var b strings.Builder
	for _, tag := range tags {
		row := m[tag]
		names := make([]string, 0, len(row))
		for e := range row {
			names = append(names, e)
		}
		sort.Slice(names, func(i, j int) bool {
			if row[names[i]] != row[names[j]] {
				return row[names[i]] > row[names[j]]
			}
			return names[i] < names[j]
		})
		cells := make([]string, len(names))
		for i, e := range names {
			cells[i] = fmt.Sprintf("%s×%d", e, row[e])
		}
		fmt.Fprintf(&b, "%s %s\n", Key.Render(tag), strings.Join(cells, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
