package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "mattespel/internal/errors"
	"mattespel/internal/repository"
)

func newGateway() *GatewayHandler {
	return NewGatewayHandler(repository.NewMemoryProfileStorage())
}

func intPtr(v int) *int { return &v }

func TestFetchOrInitCreatesZeroProfile(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	p, err := g.FetchOrInit(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Credits)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, 0, p.GamesPlayed)
	assert.Empty(t, p.Achievements)
	assert.Empty(t, p.PurchasedItems)

	// Second fetch returns the persisted record, not a new one.
	again, err := g.FetchOrInit(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestRecordAnswerStreak(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	for i := 0; i < 3; i++ {
		_, err := g.RecordAnswer(ctx, "u1", true)
		require.NoError(t, err)
	}
	p, err := g.RecordAnswer(ctx, "u1", false)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, 3, p.CorrectAnswers)
	// Per-answer recording never pays out XP or credits.
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 0, p.Credits)
}

func TestSettleRoundAlgebra(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	p, unlocked, err := g.SettleRound(ctx, "u1", "algebra", 8)
	require.NoError(t, err)

	assert.Equal(t, 160, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 24, p.Credits)
	assert.Equal(t, 1, p.GamesPlayed)
	assert.Equal(t, []string{"algebra_master"}, unlocked)
	assert.True(t, p.HasAchievement("algebra_master"))
	assert.False(t, p.HasAchievement("algebra_perfect"))
}

func TestSettleRoundCalculusPerfect(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	p, unlocked, err := g.SettleRound(ctx, "u1", "calculus", 8)
	require.NoError(t, err)

	assert.Equal(t, 240, p.XP)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 40, p.Credits)
	assert.ElementsMatch(t, []string{"calculus_perfect", "calculus_genius"}, unlocked)
}

func TestSettleRoundUnlocksOnlyOnce(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, unlocked, err := g.SettleRound(ctx, "u1", "algebra", 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"algebra_perfect", "algebra_master"}, unlocked)

	p, unlocked, err := g.SettleRound(ctx, "u1", "algebra", 10)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, []string{"algebra_perfect", "algebra_master"}, p.Achievements)
	assert.Equal(t, 400, p.XP)
	assert.Equal(t, 2, p.GamesPlayed)
}

func TestSettleRoundClampsScore(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	// algebra caps at 10 correct answers per round.
	p, _, err := g.SettleRound(ctx, "u1", "algebra", 999)
	require.NoError(t, err)
	assert.Equal(t, 200, p.XP)
	assert.Equal(t, 30, p.Credits)

	p2, _, err := g.SettleRound(ctx, "u2", "algebra", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, p2.XP)
	assert.Equal(t, 1, p2.GamesPlayed)
}

func TestSettleRoundUnknownMode(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, _, err := g.SettleRound(ctx, "u1", "trigonometry", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestApplyPatchPartial(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	p, err := g.ApplyPatch(ctx, "u1", Patch{
		XP:      intPtr(250),
		Credits: intPtr(40),
	})
	require.NoError(t, err)

	assert.Equal(t, 250, p.XP)
	assert.Equal(t, 3, p.Level) // derived, never set directly
	assert.Equal(t, 40, p.Credits)
	assert.Equal(t, 0, p.Streak)
}

func TestApplyPatchRejectsNegative(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, err := g.ApplyPatch(ctx, "u1", Patch{XP: intPtr(-1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestApplyPatchUnionSemantics(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, err := g.ApplyPatch(ctx, "u1", Patch{Achievements: []string{"speed_demon"}})
	require.NoError(t, err)

	p, err := g.ApplyPatch(ctx, "u1", Patch{Achievements: []string{"speed_demon", "algebra_master"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"speed_demon", "algebra_master"}, p.Achievements)
}

func TestApplyPatchRejectsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, err := g.ApplyPatch(ctx, "u1", Patch{PurchasedItems: []string{"frame_totally_fake"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = g.ApplyPatch(ctx, "u1", Patch{Achievements: []string{"not_a_real_achievement"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	// The owned and unlocked sets stay subsets of their catalogs.
	p, err := g.FetchOrInit(ctx, "u1")
	require.NoError(t, err)
	assert.NotContains(t, p.PurchasedItems, "frame_totally_fake")
	assert.NotContains(t, p.Achievements, "not_a_real_achievement")
}

func TestApplyPatchEquip(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	// Equipping an item that is not owned is rejected.
	_, err := g.ApplyPatch(ctx, "u1", Patch{
		EquippedItems: map[string]string{"frame": "frame_gold"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotOwned))

	_, err = g.ApplyPatch(ctx, "u1", Patch{PurchasedItems: []string{"frame_gold"}})
	require.NoError(t, err)

	p, err := g.ApplyPatch(ctx, "u1", Patch{
		EquippedItems: map[string]string{"frame": "frame_gold"},
	})
	require.NoError(t, err)
	assert.Equal(t, "frame_gold", p.EquippedItems["frame"])

	// Clearing a slot is allowed without ownership checks.
	p, err = g.ApplyPatch(ctx, "u1", Patch{
		EquippedItems: map[string]string{"frame": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "", p.EquippedItems["frame"])
}

func TestApplyPatchRejectsWrongSlot(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	_, err := g.ApplyPatch(ctx, "u1", Patch{PurchasedItems: []string{"theme_dark"}})
	require.NoError(t, err)

	_, err = g.ApplyPatch(ctx, "u1", Patch{
		EquippedItems: map[string]string{"frame": "theme_dark"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = g.ApplyPatch(ctx, "u1", Patch{
		EquippedItems: map[string]string{"hat": "theme_dark"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestApplyPatchAtomicOnFailure(t *testing.T) {
	ctx := context.Background()
	g := newGateway()

	before, err := g.FetchOrInit(ctx, "u1")
	require.NoError(t, err)

	_, err = g.ApplyPatch(ctx, "u1", Patch{
		Credits:       intPtr(500),
		EquippedItems: map[string]string{"frame": "frame_gold"},
	})
	require.Error(t, err)

	after, err := g.FetchOrInit(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed patch must not apply partially")
}
