// Package emotions holds the fixed emotion taxonomy: thirty-six named
// emotions in four groups, each with a display color.
package emotions

import (
	"fmt"

	"github.com/itnewcomer/Memento/internal/common"
)

// Emotion is one selectable emotion.
type Emotion struct {
	Name  string
	Color string // #RRGGBB
	Group string
}

// Group is a named cluster of nine emotions.
type Group struct {
	Name     string
	Color    string
	Emotions []Emotion
}

const (
	GroupCalm     = "Calm & Secure"
	GroupActive   = "Active & Positive"
	GroupLow      = "Low & Inward"
	GroupAnger    = "Unpleasant & Angry"
	gridDimension = 6
)

var groups = []Group{
	{Name: GroupCalm, Color: "#34C759", Emotions: []Emotion{
		{Name: "Peaceful", Color: "#B2E6CC"},
		{Name: "Grateful", Color: "#CCEDBD"},
		{Name: "Awe", Color: "#FCF5C4"},
		{Name: "Safe", Color: "#BDE6D9"},
		{Name: "Calm", Color: "#BAE8E8"},
		{Name: "Curious", Color: "#DEF7D1"},
		{Name: "Cozy", Color: "#BFE0CC"},
		{Name: "Chill", Color: "#B8DEE3"},
		{Name: "Fine", Color: "#EBF5D9"},
	}},
	{Name: GroupActive, Color: "#FFCC00", Emotions: []Emotion{
		{Name: "Love", Color: "#FFE8B2"},
		{Name: "Connected", Color: "#FFE8B2"},
		{Name: "Joy", Color: "#FFE387"},
		{Name: "Creative", Color: "#FCF2C2"},
		{Name: "Happy", Color: "#FFF2A6"},
		{Name: "Excited", Color: "#FFE082"},
		{Name: "Pleasant", Color: "#FCF2C7"},
		{Name: "Silly", Color: "#FFEDB8"},
		{Name: "Energetic", Color: "#FFCC70"},
	}},
	{Name: GroupLow, Color: "#30B0C7", Emotions: []Emotion{
		{Name: "Tired", Color: "#96C2EB"},
		{Name: "Disappointed", Color: "#82ADE0"},
		{Name: "Bored", Color: "#99B8D1"},
		{Name: "Miserable", Color: "#70A1E0"},
		{Name: "Sad", Color: "#618ACC"},
		{Name: "Shy", Color: "#8FB0E3"},
		{Name: "Depressed", Color: "#4C6EB2"},
		{Name: "Lonely", Color: "#5478BD"},
		{Name: "Ashamed", Color: "#828FCC"},
	}},
	{Name: GroupAnger, Color: "#FF9500", Emotions: []Emotion{
		{Name: "Annoyed", Color: "#FAB29C"},
		{Name: "Frustrated", Color: "#FAA17D"},
		{Name: "Rowdy", Color: "#FF7542"},
		{Name: "Embarrassed", Color: "#FAC2AB"},
		{Name: "Angry", Color: "#FF7542"},
		{Name: "Stressed", Color: "#FF5C38"},
		{Name: "Anxious", Color: "#FAB29C"},
		{Name: "Jealous", Color: "#FF7542"},
		{Name: "Furious", Color: "#FF3830"},
	}},
}

// Paper layout: pleasant top-left, calm on the left, intense on the right.
var gridNames = [gridDimension][gridDimension]string{
	{"Peaceful", "Grateful", "Awe", "Love", "Connected", "Joy"},
	{"Safe", "Calm", "Curious", "Creative", "Happy", "Excited"},
	{"Cozy", "Chill", "Fine", "Pleasant", "Silly", "Energetic"},
	{"Tired", "Disappointed", "Bored", "Annoyed", "Frustrated", "Rowdy"},
	{"Miserable", "Sad", "Shy", "Embarrassed", "Angry", "Stressed"},
	{"Depressed", "Lonely", "Ashamed", "Anxious", "Jealous", "Furious"},
}

var (
	byName map[string]Emotion
	all    []Emotion
)

func init() {
	byName = make(map[string]Emotion, gridDimension*gridDimension)
	for gi := range groups {
		for ei := range groups[gi].Emotions {
			e := &groups[gi].Emotions[ei]
			e.Group = groups[gi].Name
			byName[e.Name] = *e
			all = append(all, *e)
		}
	}
	for _, row := range gridNames {
		for _, name := range row {
			if _, ok := byName[name]; !ok {
				panic(fmt.Sprintf("emotions: grid names unknown emotion %q", name))
			}
		}
	}
}

// Lookup returns the emotion called name. Names are case-sensitive.
func Lookup(name string) (Emotion, error) {
	e, ok := byName[name]
	if !ok {
		return Emotion{}, fmt.Errorf("%w %q: %w", common.ErrUnknownEmotion, name, common.ErrorNotFound)
	}
	return e, nil
}

// Valid reports whether name is part of the taxonomy.
func Valid(name string) bool {
	_, ok := byName[name]
	return ok
}

// All returns every emotion in group order.
func All() []Emotion {
	out := make([]Emotion, len(all))
	copy(out, all)
	return out
}

// Groups returns the four groups. The returned slices are copies.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Emotions = append([]Emotion(nil), g.Emotions...)
	}
	return out
}

// Grid returns the 6x6 selection layout, row by row.
func Grid() [][]Emotion {
	grid := make([][]Emotion, gridDimension)
	for r, row := range gridNames {
		grid[r] = make([]Emotion, gridDimension)
		for c, name := range row {
			grid[r][c] = byName[name]
		}
	}
	return grid
}

// Color returns the display color of name, or "" if it is unknown.
func Color(name string) string {
	return byName[name].Color
}
