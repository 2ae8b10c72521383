package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/models"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
)

// GoalsKey is the settings key holding the encoded goal set.
const GoalsKey = "monthlyGoals"

// GoalService keeps the whole goal set as one blob: every change loads
// the set, edits one goal and writes the set back.
type GoalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewGoalService(db *sql.DB, rm repomanager.RepositoryManager, l logging.Logger) *GoalService {
	return &GoalService{db: db, repomanager: rm, logger: l.With("module", "goals")}
}

// Load returns every stored goal. Missing or unreadable data yields an
// empty list; only storage failures are errors.
func (s *GoalService) Load(ctx context.Context) ([]models.MonthlyGoal, error) {
	data, err := s.repomanager.Metadata(s.db).Get(ctx, GoalsKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.MonthlyGoal{}, nil
	}
	goals, err := models.DecodeGoals(data)
	if err != nil {
		s.logger.Warn(ctx, "stored goals are unreadable, starting empty", "error", err)
		return []models.MonthlyGoal{}, nil
	}
	return goals, nil
}

// SaveAll replaces the stored goal set.
func (s *GoalService) SaveAll(ctx context.Context, goals []models.MonthlyGoal) error {
	data, err := models.EncodeGoals(goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	return s.repomanager.Metadata(s.db).Set(ctx, GoalsKey, data)
}

// ForMonth returns the goal for (year, month) or common.ErrorNotFound.
func (s *GoalService) ForMonth(ctx context.Context, year, month int) (models.MonthlyGoal, error) {
	goals, err := s.Load(ctx)
	if err != nil {
		return models.MonthlyGoal{}, err
	}
	for _, g := range goals {
		if g.Is(year, month) {
			return g, nil
		}
	}
	return models.MonthlyGoal{}, fmt.Errorf("goal %04d-%02d: %w", year, month, common.ErrorNotFound)
}

// CreateForMonth adds an empty goal. It fails with common.ErrGoalExists
// if the month already has one.
func (s *GoalService) CreateForMonth(ctx context.Context, year, month int) (models.MonthlyGoal, error) {
	if month < 1 || month > 12 {
		return models.MonthlyGoal{}, fmt.Errorf("invalid month %d", month)
	}
	goals, err := s.Load(ctx)
	if err != nil {
		return models.MonthlyGoal{}, err
	}
	for _, g := range goals {
		if g.Is(year, month) {
			return models.MonthlyGoal{}, fmt.Errorf("%04d-%02d: %w", year, month, common.ErrGoalExists)
		}
	}
	g := models.NewMonthlyGoal(year, month)
	if err := s.SaveAll(ctx, append(goals, g)); err != nil {
		return models.MonthlyGoal{}, err
	}
	s.logger.Info(ctx, "goal created", "year", year, "month", month)
	return g, nil
}

// Update finds the goal for (year, month) and applies fn to it in the
// same step, then persists the set. fn never sees a missing goal: that
// case returns common.ErrorNotFound before fn runs. An error from fn
// discards the change.
func (s *GoalService) Update(ctx context.Context, year, month int, fn func(g *models.MonthlyGoal) error) (models.MonthlyGoal, error) {
	goals, err := s.Load(ctx)
	if err != nil {
		return models.MonthlyGoal{}, err
	}
	for i := range goals {
		if !goals[i].Is(year, month) {
			continue
		}
		if err := fn(&goals[i]); err != nil {
			return models.MonthlyGoal{}, err
		}
		if err := s.SaveAll(ctx, goals); err != nil {
			return models.MonthlyGoal{}, err
		}
		return goals[i], nil
	}
	return models.MonthlyGoal{}, fmt.Errorf("goal %04d-%02d: %w", year, month, common.ErrorNotFound)
}

func (s *GoalService) AddTask(ctx context.Context, year, month int, l models.GoalList, title string) (models.MonthlyGoal, error) {
	return s.Update(ctx, year, month, func(g *models.MonthlyGoal) error {
		_, err := g.AddTask(l, title)
		return err
	})
}

// ToggleTask flips item n (one-based, as shown to the user).
func (s *GoalService) ToggleTask(ctx context.Context, year, month int, l models.GoalList, n int) (models.MonthlyGoal, error) {
	return s.Update(ctx, year, month, func(g *models.MonthlyGoal) error {
		_, err := g.ToggleTask(l, n-1)
		return err
	})
}

// RemoveTask deletes item n (one-based).
func (s *GoalService) RemoveTask(ctx context.Context, year, month int, l models.GoalList, n int) (models.MonthlyGoal, error) {
	return s.Update(ctx, year, month, func(g *models.MonthlyGoal) error {
		return g.RemoveTask(l, n-1)
	})
}

func (s *GoalService) SetLetter(ctx context.Context, year, month int, letter string) (models.MonthlyGoal, error) {
	return s.Update(ctx, year, month, func(g *models.MonthlyGoal) error {
		g.LetterToSelf = letter
		return nil
	})
}
