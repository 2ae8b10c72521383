// Package tags extracts inline hashtags from journal notes.
package tags

import (
	"regexp"
	"sort"
)

var hashtag = regexp.MustCompile(`#[\p{L}0-9_]+`)

// Extract returns every hashtag in text, in text order and including the
// leading '#'. Duplicates are kept. Text without tags yields an empty,
// non-nil slice.
func Extract(text string) []string {
	found := hashtag.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// Set returns the distinct values of list, sorted.
func Set(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, t := range list {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Union flattens a per-emotion tag map into one sorted, distinct list.
func Union(byEmotion map[string][]string) []string {
	var all []string
	for _, list := range byEmotion {
		all = append(all, list...)
	}
	return Set(all)
}
