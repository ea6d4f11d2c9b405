package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/ecosnap/ecosnap-backend/internal/ai"
	"github.com/ecosnap/ecosnap-backend/internal/logger"
	"github.com/ecosnap/ecosnap-backend/internal/metrics"
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotTrashImage   = errors.New("image was not recognized as trash")
)

// AnalyzeResult pairs an analysis with the submission's fingerprint and
// whether that fingerprint has already earned a reward.
type AnalyzeResult struct {
	Analysis    *model.Analysis
	Fingerprint string
	Duplicate   bool
}

// ConfirmResult reports the outcome of one recycling confirmation.
type ConfirmResult struct {
	Awarded       bool
	Duplicate     bool
	AmountAwarded int
	Category      model.Category
	Points        int
	TreeBank      int
	Stage         model.Stage
}

// TrashService runs the submission flow: fingerprint, duplicate check,
// classification, and the confirm step that pays out points.
type TrashService interface {
	Fingerprint(image []byte, readErr error) string
	Analyze(ctx context.Context, username string, image []byte, mimeType string, fingerprint string) (*AnalyzeResult, error)
	Confirm(ctx context.Context, username, fingerprint, category string) (*ConfirmResult, error)
}

type trashService struct {
	users    repository.UserRepository
	ledger   repository.LedgerRepository
	analyzer ai.TrashAnalyzer

	// cache keyed by fingerprint: repeat analyzes of the same bytes skip
	// the model call, and confirm reads the category from here instead
	// of trusting the client when possible.
	cache *expirable.LRU[string, *model.Analysis]
}

func NewTrashService(users repository.UserRepository, ledger repository.LedgerRepository, analyzer ai.TrashAnalyzer) TrashService {
	return &trashService{
		users:    users,
		ledger:   ledger,
		analyzer: analyzer,
		cache:    expirable.NewLRU[string, *model.Analysis](512, nil, time.Hour),
	}
}

// Fingerprint hashes the image bytes. An unreadable upload fails open: a
// locally-unique token stands in so the user is never blocked by the
// anti-cheat check.
func (s *trashService) Fingerprint(image []byte, readErr error) string {
	if readErr != nil {
		logger.Log.Warnw("image read failed, using fallback fingerprint", "err", readErr)
		return "local-" + uuid.NewString()
	}
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}

func (s *trashService) Analyze(ctx context.Context, username string, image []byte, mimeType string, fingerprint string) (*AnalyzeResult, error) {
	dup, err := s.ledger.Has(ctx, username, fingerprint)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(fingerprint); ok {
		return &AnalyzeResult{Analysis: cached, Fingerprint: fingerprint, Duplicate: dup}, nil
	}

	analysis, err := s.analyzer.Analyze(ctx, image, mimeType)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	switch {
	case !analysis.IsValidTrashImage:
		metrics.AnalysesTotal.WithLabelValues("rejected").Inc()
	default:
		metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	}
	s.cache.Add(fingerprint, analysis)
	return &AnalyzeResult{Analysis: analysis, Fingerprint: fingerprint, Duplicate: dup}, nil
}

// Confirm pays out the reward for one submission. The duplicate check and
// ledger insert are one logical step under the user's lock, so N confirms
// of the same fingerprint award exactly once. A duplicate is a no-reward
// outcome, not an error.
func (s *trashService) Confirm(ctx context.Context, username, fingerprint, category string) (*ConfirmResult, error) {
	unlock := accountLocks.lock(username)
	defer unlock()

	dup, err := s.ledger.Has(ctx, username, fingerprint)
	if err != nil {
		return nil, err
	}
	if dup {
		metrics.DuplicateSubmissions.Inc()
		u, err := s.users.Get(ctx, username)
		if err != nil {
			return nil, err
		}
		return &ConfirmResult{
			Duplicate: true,
			Points:    u.Points,
			TreeBank:  u.TreeBank,
			Stage:     model.StageForPoints(u.Points),
		}, nil
	}

	cat, err := s.resolveCategory(fingerprint, category)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	amount := model.RewardPoints(cat)
	u.AddReward(amount, cat)

	// The fingerprint is recorded before the reward is persisted: if the
	// save fails the fingerprint is already burned, so a retry cannot bank
	// the same image twice.
	if err := s.ledger.Add(ctx, username, fingerprint); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	metrics.RewardsTotal.WithLabelValues(string(cat)).Inc()
	logger.Log.Infow("reward granted",
		"username", username, "category", cat, "amount", amount, "points", u.Points)

	return &ConfirmResult{
		Awarded:       true,
		AmountAwarded: amount,
		Category:      cat,
		Points:        u.Points,
		TreeBank:      u.TreeBank,
		Stage:         model.StageForPoints(u.Points),
	}, nil
}

// resolveCategory prefers the cached analysis over the client-supplied
// category; the cache may have expired, in which case the request value is
// accepted as long as it names a known bucket.
func (s *trashService) resolveCategory(fingerprint, requested string) (model.Category, error) {
	if cached, ok := s.cache.Get(fingerprint); ok {
		if !cached.IsValidTrashImage {
			return "", ErrNotTrashImage
		}
		return cached.Category, nil
	}
	cat, ok := model.ParseCategory(requested)
	if !ok {
		return "", ErrUnknownCategory
	}
	return cat, nil
}
