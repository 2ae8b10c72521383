package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/itnewcomer/Memento/internal/common"
)

// GoalList names one of the three task lists of a MonthlyGoal.
type GoalList string

const (
	ListExcited GoalList = "excited"
	ListStretch GoalList = "stretch"
	ListTasks   GoalList = "task"
)

const (
	MaxExcitedGoals = 5
	MaxStretchGoals = 5
	MaxTasks        = 20
)

// ParseGoalList accepts the list names used on the command line.
func ParseGoalList(s string) (GoalList, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excited":
		return ListExcited, nil
	case "stretch":
		return ListStretch, nil
	case "task", "tasks":
		return ListTasks, nil
	}
	return "", fmt.Errorf("unknown goal list %q", s)
}

func (l GoalList) Cap() int {
	switch l {
	case ListExcited:
		return MaxExcitedGoals
	case ListStretch:
		return MaxStretchGoals
	default:
		return MaxTasks
	}
}

type GoalTask struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	IsCompleted bool      `json:"isCompleted" yaml:"isCompleted"`
}

// MonthlyGoal is the per-month plan. At most one exists per (Year, Month).
type MonthlyGoal struct {
	ID           uuid.UUID  `json:"id" yaml:"id"`
	Year         int        `json:"year" yaml:"year"`
	Month        int        `json:"month" yaml:"month"`
	ExcitedGoals []GoalTask `json:"excitedGoals" yaml:"excitedGoals"`
	StretchGoals []GoalTask `json:"stretchGoals" yaml:"stretchGoals"`
	Tasks        []GoalTask `json:"tasks" yaml:"tasks"`
	LetterToSelf string     `json:"letterToSelf" yaml:"letterToSelf"`
}

func NewMonthlyGoal(year, month int) MonthlyGoal {
	return MonthlyGoal{
		ID:           uuid.New(),
		Year:         year,
		Month:        month,
		ExcitedGoals: []GoalTask{},
		StretchGoals: []GoalTask{},
		Tasks:        []GoalTask{},
	}
}

func (g *MonthlyGoal) Is(year, month int) bool {
	return g.Year == year && g.Month == month
}

func (g *MonthlyGoal) list(l GoalList) (*[]GoalTask, error) {
	switch l {
	case ListExcited:
		return &g.ExcitedGoals, nil
	case ListStretch:
		return &g.StretchGoals, nil
	case ListTasks:
		return &g.Tasks, nil
	}
	return nil, fmt.Errorf("unknown goal list %q", l)
}

// Items returns the tasks of list l.
func (g *MonthlyGoal) Items(l GoalList) []GoalTask {
	p, err := g.list(l)
	if err != nil {
		return nil
	}
	return *p
}

// AddTask appends a task with a trimmed title to list l.
func (g *MonthlyGoal) AddTask(l GoalList, title string) (GoalTask, error) {
	p, err := g.list(l)
	if err != nil {
		return GoalTask{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return GoalTask{}, common.ErrEmptyTitle
	}
	if len(*p) >= l.Cap() {
		return GoalTask{}, fmt.Errorf("%w: %s holds at most %d", common.ErrGoalListFull, l, l.Cap())
	}
	t := GoalTask{ID: uuid.New(), Title: title}
	*p = append(*p, t)
	return t, nil
}

// ToggleTask flips completion of the task at index i (zero-based).
func (g *MonthlyGoal) ToggleTask(l GoalList, i int) (GoalTask, error) {
	p, err := g.list(l)
	if err != nil {
		return GoalTask{}, err
	}
	if i < 0 || i >= len(*p) {
		return GoalTask{}, fmt.Errorf("%s item %d: %w", l, i+1, common.ErrorNotFound)
	}
	(*p)[i].IsCompleted = !(*p)[i].IsCompleted
	return (*p)[i], nil
}

// RemoveTask deletes the task at index i (zero-based), keeping order.
func (g *MonthlyGoal) RemoveTask(l GoalList, i int) error {
	p, err := g.list(l)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(*p) {
		return fmt.Errorf("%s item %d: %w", l, i+1, common.ErrorNotFound)
	}
	*p = append((*p)[:i], (*p)[i+1:]...)
	return nil
}

// Progress counts completed items per list.
type Progress struct {
	Done  int
	Total int
}

func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

func (g *MonthlyGoal) Progress() map[GoalList]Progress {
	out := make(map[GoalList]Progress, 3)
	for _, l := range []GoalList{ListExcited, ListStretch, ListTasks} {
		var p Progress
		for _, t := range g.Items(l) {
			p.Total++
			if t.IsCompleted {
				p.Done++
			}
		}
		out[l] = p
	}
	return out
}

// EncodeGoals serializes the whole goal set as one JSON array.
func EncodeGoals(goals []MonthlyGoal) ([]byte, error) {
	if goals == nil {
		goals = []MonthlyGoal{}
	}
	return json.Marshal(goals)
}

// DecodeGoals parses a blob written by EncodeGoals. Nil lists are
// replaced with empty ones so decoded goals compare equal to fresh ones.
func DecodeGoals(data []byte) ([]MonthlyGoal, error) {
	var goals []MonthlyGoal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].normalize()
	}
	if goals == nil {
		goals = []MonthlyGoal{}
	}
	return goals, nil
}

// Validate checks the month and the list caps and titles.
func (g *MonthlyGoal) Validate() error {
	if g.Year < 1 || g.Month < 1 || g.Month > 12 {
		return fmt.Errorf("%w: month %04d-%02d", common.ErrInvalidGoal, g.Year, g.Month)
	}
	for _, l := range []GoalList{ListExcited, ListStretch, ListTasks} {
		items := g.Items(l)
		if len(items) > l.Cap() {
			return fmt.Errorf("%04d-%02d %s: %w", g.Year, g.Month, l, common.ErrGoalListFull)
		}
		for _, it := range items {
			if strings.TrimSpace(it.Title) == "" {
				return fmt.Errorf("%04d-%02d %s: %w", g.Year, g.Month, l, common.ErrEmptyTitle)
			}
		}
	}
	return nil
}

func (g *MonthlyGoal) normalize() {
	if g.ExcitedGoals == nil {
		g.ExcitedGoals = []GoalTask{}
	}
	if g.StretchGoals == nil {
		g.StretchGoals = []GoalTask{}
	}
	if g.Tasks == nil {
		g.Tasks = []GoalTask{}
	}
}

// NormalizeGoals fills nil lists, for goals decoded by other encoders.
func NormalizeGoals(goals []MonthlyGoal) []MonthlyGoal {
	for i := range goals {
		goals[i].normalize()
	}
	return goals
}
