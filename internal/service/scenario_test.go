package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full journey of a new account: first plastic reward, then a metal reward
// crossing the sprout boundary, then a watering purchase.
func TestNewUserJourney(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	ledger := repository.NewMemoryLedgerRepository(500)
	growth := NewGrowthScheduler(testGrowthDelay)

	userSvc := NewUserService(users, sessions, growth)
	trashSvc := NewTrashService(users, ledger, &stubAnalyzer{analysis: plasticAnalysis()})
	treeSvc := NewTreeService(users, growth)

	u, err := userSvc.Login(ctx, "green_hero", "secret")
	require.NoError(t, err)
	require.Equal(t, 0, u.Points)
	require.Equal(t, 0, u.TreeBank)
	require.Len(t, u.Trees, 1)

	// First submission: plastic, worth 5.
	fp1 := trashSvc.Fingerprint([]byte("bottle"), nil)
	out, err := trashSvc.Confirm(ctx, "green_hero", fp1, "plastics")
	require.NoError(t, err)
	assert.Equal(t, 5, out.Points)
	assert.Equal(t, 5, out.TreeBank)
	assert.Equal(t, model.StageSeed, out.Stage, "5 points is still seed")

	rec, err := users.Get(ctx, "green_hero")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.RecycledByCategory()[model.CategoryPlastics])

	// Second submission: metal, crossing into sprout at 10.
	fp2 := trashSvc.Fingerprint([]byte("can"), nil)
	out, err = trashSvc.Confirm(ctx, "green_hero", fp2, "metal")
	require.NoError(t, err)
	assert.Equal(t, 10, out.Points)
	assert.Equal(t, 10, out.TreeBank)
	assert.Equal(t, model.StageSprout, out.Stage, "10 points is sprout, boundary included")

	// Spend 5 watering the stage-1 tree.
	watered, err := treeSvc.Water(ctx, "green_hero", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, watered.TreeBank)
	assert.True(t, waitForStage(t, users, "green_hero", 0, 2))

	// Lifetime points and bank have diverged for good.
	rec, err = users.Get(ctx, "green_hero")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Points)
	assert.Equal(t, 5, rec.TreeBank)
}

// A pending growth commit scheduled before a re-login must not touch the
// replacement session's record.
func TestReloginSupersedesPendingGrowth(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	// This scheduler's delay must comfortably exceed a bcrypt comparison at
	// DefaultCost, or the pending commit fires before the re-login can
	// cancel it and the test races against auth instead of the scheduler.
	const reloginGrowthDelay = 500 * time.Millisecond
	growth := NewGrowthScheduler(reloginGrowthDelay)
	userSvc := NewUserService(users, sessions, growth)
	treeSvc := NewTreeService(users, growth)

	_, err := userSvc.Login(ctx, "green_hero", "secret")
	require.NoError(t, err)
	giveBank(t, users, "green_hero", 10)

	_, err = treeSvc.Water(ctx, "green_hero", 0)
	require.NoError(t, err)

	_, err = userSvc.Login(ctx, "green_hero", "secret")
	require.NoError(t, err)

	time.Sleep(2 * reloginGrowthDelay)
	u, err := users.Get(ctx, "green_hero")
	require.NoError(t, err)
	assert.Equal(t, 1, u.TreeByID(0).DisplayStage)
}
