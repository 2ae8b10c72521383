package report

import (
	"sort"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/models"
)

// TagIndex maps a tag to the records using it, ordered by day. A record
// appears at most once under each tag.
type TagIndex map[string][]models.JournalRecord

// Tags returns the index keys sorted.
func (ti TagIndex) Tags() []string {
	out := make([]string, 0, len(ti))
	for t := range ti {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TagEmotionIndex groups the scope's records by every tag found in their
// per-emotion tag sets.
func TagEmotionIndex(scope Scope, records []models.JournalRecord) TagIndex {
	seen := make(map[string]map[calendarx.Day]struct{})
	idx := make(TagIndex)

	for _, r := range inScope(scope, records) {
		for _, list := range r.TagsByEmotion {
			for _, tag := range list {
				days, ok := seen[tag]
				if !ok {
					days = make(map[calendarx.Day]struct{})
					seen[tag] = days
				}
				if _, dup := days[r.Day]; dup {
					continue
				}
				days[r.Day] = struct{}{}
				idx[tag] = append(idx[tag], r)
			}
		}
	}

	for tag := range idx {
		list := idx[tag]
		sort.Slice(list, func(i, j int) bool { return list[i].Day.Before(list[j].Day) })
	}
	return idx
}

// TagEmotionMatrix counts, for each tag, how many records in scope used
// it under each emotion.
func TagEmotionMatrix(scope Scope, records []models.JournalRecord) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, r := range inScope(scope, records) {
		for emotion, list := range r.TagsByEmotion {
			for _, tag := range distinct(list) {
				row, ok := out[tag]
				if !ok {
					row = make(map[string]int)
					out[tag] = row
				}
				row[emotion]++
			}
		}
	}
	return out
}

func inScope(scope Scope, records []models.JournalRecord) []models.JournalRecord {
	out := make([]models.JournalRecord, 0, len(records))
	for _, r := range records {
		if scope.Contains(r.Day) {
			out = append(out, r)
		}
	}
	return out
}

func distinct(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := list[:0:0]
	for _, t := range list {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
