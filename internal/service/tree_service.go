package service

import (
	"context"
	"errors"

	"github.com/ecosnap/ecosnap-backend/internal/logger"
	"github.com/ecosnap/ecosnap-backend/internal/metrics"
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
)

var (
	ErrTreeNotFound     = errors.New("tree not found")
	ErrTreeFullyGrown   = errors.New("tree is fully grown")
	ErrInsufficientBank = errors.New("insufficient bank")
	ErrNotAllowedYet    = errors.New("planting not allowed yet")
	ErrUnknownPalette   = errors.New("unknown palette")
)

// Progress is the display-facing stage/progress figure set.
type Progress struct {
	Points        int
	TreeBank      int
	Stage         model.Stage
	NextThreshold int
	HasNext       bool
}

// TreeService owns watering purchases and planting.
type TreeService interface {
	Trees(ctx context.Context, username string) ([]model.Tree, int, bool, error)
	Progress(ctx context.Context, username string) (*Progress, error)
	Water(ctx context.Context, username string, treeID int) (*model.User, error)
	Plant(ctx context.Context, username string, x, z float64, paletteID string) (*model.User, error)
}

type treeService struct {
	users  repository.UserRepository
	growth *GrowthScheduler
}

func NewTreeService(users repository.UserRepository, growth *GrowthScheduler) TreeService {
	return &treeService{users: users, growth: growth}
}

// Trees returns the forest, the spendable bank, and whether a new tree may
// be planted.
func (s *treeService) Trees(ctx context.Context, username string) ([]model.Tree, int, bool, error) {
	u, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, 0, false, err
	}
	return u.Trees, u.TreeBank, u.AllTreesFullyGrown(), nil
}

func (s *treeService) Progress(ctx context.Context, username string) (*Progress, error) {
	u, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	stage, next, ok := model.ProgressToNextStage(u.Points)
	return &Progress{
		Points:        u.Points,
		TreeBank:      u.TreeBank,
		Stage:         stage,
		NextThreshold: next,
		HasNext:       ok,
	}, nil
}

// Water debits the bank immediately and commits the stage increment after
// the growth delay. The commit reloads the record under the account lock so
// a reward landing during the delay is not overwritten, and is dropped
// entirely when the session has been replaced in the meantime.
func (s *treeService) Water(ctx context.Context, username string, treeID int) (*model.User, error) {
	unlock := accountLocks.lock(username)
	defer unlock()

	u, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	tree := u.TreeByID(treeID)
	if tree == nil {
		return nil, ErrTreeNotFound
	}
	if tree.DisplayStage >= model.MaxDisplayStage {
		return nil, ErrTreeFullyGrown
	}
	cost := model.WaterCost(tree.DisplayStage)
	if u.TreeBank < cost {
		return nil, ErrInsufficientBank
	}

	u.TreeBank -= cost
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	metrics.TreesWatered.Inc()

	s.growth.Schedule(username, func() {
		s.commitGrowth(username, treeID)
	})
	return u, nil
}

func (s *treeService) commitGrowth(username string, treeID int) {
	unlock := accountLocks.lock(username)
	defer unlock()

	ctx := context.Background()
	u, err := s.users.Get(ctx, username)
	if err != nil {
		logger.Log.Errorw("growth commit load failed", "username", username, "err", err)
		return
	}
	tree := u.TreeByID(treeID)
	if tree == nil || tree.DisplayStage >= model.MaxDisplayStage {
		return
	}
	tree.DisplayStage++
	if err := s.users.Save(ctx, u); err != nil {
		logger.Log.Errorw("growth commit save failed", "username", username, "err", err)
		return
	}
	logger.Log.Infow("tree grew", "username", username, "tree", treeID, "stage", tree.DisplayStage)
}

// Plant adds a new tree. Only permitted once every existing tree is fully
// grown; the position is clamped into the planting area.
func (s *treeService) Plant(ctx context.Context, username string, x, z float64, paletteID string) (*model.User, error) {
	if !model.ValidPalette(paletteID) {
		return nil, ErrUnknownPalette
	}
	unlock := accountLocks.lock(username)
	defer unlock()

	u, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if !u.AllTreesFullyGrown() {
		return nil, ErrNotAllowedYet
	}
	u.Trees = append(u.Trees, model.Tree{
		Username:     username,
		TreeID:       len(u.Trees),
		X:            model.ClampPosition(x),
		Z:            model.ClampPosition(z),
		PaletteID:    paletteID,
		DisplayStage: 1,
	})
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	metrics.TreesPlanted.Inc()
	return u, nil
}
