package profile

import (
	"context"
	"fmt"

	gameDomain "mattespel/internal/domain/game"
	profileDomain "mattespel/internal/domain/profile"
	"mattespel/internal/domain/shop"
	errs "mattespel/internal/errors"
)

// ProfileStorage is the persistence boundary for profile records.
// Update must apply the mutation atomically with respect to concurrent
// updates of the same record (the redis implementation retries under
// optimistic locking) and return ErrProfileNotFound when no record
// exists.
type ProfileStorage interface {
	Get(ctx context.Context, userID string) (profileDomain.Profile, bool, error)
	Save(ctx context.Context, userID string, p profileDomain.Profile) error
	Update(ctx context.Context, userID string, mutate func(profileDomain.Profile) (profileDomain.Profile, error)) (profileDomain.Profile, error)
}

type GatewayHandler struct {
	store ProfileStorage
}

func NewGatewayHandler(store ProfileStorage) *GatewayHandler {
	return &GatewayHandler{store: store}
}

// FetchOrInit loads the user's profile, creating and persisting the
// zero-state record on first access. First access has create
// semantics, not not-found semantics.
func (g *GatewayHandler) FetchOrInit(ctx context.Context, userID string) (profileDomain.Profile, error) {
	p, found, err := g.store.Get(ctx, userID)
	if err != nil {
		return profileDomain.Profile{}, err
	}
	if found {
		return p.Normalize(), nil
	}

	p = profileDomain.New()
	if err := g.store.Save(ctx, userID, p); err != nil {
		return profileDomain.Profile{}, err
	}
	return p, nil
}

// Patch is a partial-profile update. Absent fields are left untouched.
// Level is always derived from XP and cannot be set directly;
// achievements and purchased items are append-only unions of catalog
// ids, unknown ids reject the patch.
type Patch struct {
	XP             *int              `json:"xp"`
	Credits        *int              `json:"credits"`
	Streak         *int              `json:"streak"`
	GamesPlayed    *int              `json:"gamesPlayed"`
	CorrectAnswers *int              `json:"correctAnswers"`
	Achievements   []string          `json:"achievements"`
	PurchasedItems []string          `json:"purchasedItems"`
	EquippedItems  map[string]string `json:"equippedItems"`
}

func (patch Patch) validate() error {
	for name, v := range map[string]*int{
		"xp":             patch.XP,
		"credits":        patch.Credits,
		"streak":         patch.Streak,
		"gamesPlayed":    patch.GamesPlayed,
		"correctAnswers": patch.CorrectAnswers,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must be non-negative", errs.ErrInvalidInput, name)
		}
	}
	for _, id := range patch.Achievements {
		if _, ok := gameDomain.AchievementByID(id); !ok {
			return fmt.Errorf("%w: unknown achievement %q", errs.ErrInvalidInput, id)
		}
	}
	for _, id := range patch.PurchasedItems {
		if _, ok := shop.ItemByID(id); !ok {
			return fmt.Errorf("%w: unknown item %q", errs.ErrInvalidInput, id)
		}
	}
	for slot := range patch.EquippedItems {
		if _, err := shop.ParseCategory(slot); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPatch merges a validated partial update into the stored profile.
// The merge is all-or-nothing at the request boundary: an invalid field
// rejects the whole patch.
func (g *GatewayHandler) ApplyPatch(ctx context.Context, userID string, patch Patch) (profileDomain.Profile, error) {
	if err := patch.validate(); err != nil {
		return profileDomain.Profile{}, err
	}

	// Guarantees the record exists so a fresh user can patch too.
	if _, err := g.FetchOrInit(ctx, userID); err != nil {
		return profileDomain.Profile{}, err
	}

	return g.store.Update(ctx, userID, func(p profileDomain.Profile) (profileDomain.Profile, error) {
		if patch.XP != nil {
			p.XP = *patch.XP
		}
		if patch.Credits != nil {
			p.Credits = *patch.Credits
		}
		if patch.Streak != nil {
			p.Streak = *patch.Streak
		}
		if patch.GamesPlayed != nil {
			p.GamesPlayed = *patch.GamesPlayed
		}
		if patch.CorrectAnswers != nil {
			p.CorrectAnswers = *patch.CorrectAnswers
		}
		for _, id := range patch.Achievements {
			p = p.UnlockAchievement(id)
		}
		for _, id := range patch.PurchasedItems {
			p = p.AddPurchasedItem(id)
		}
		for slot, itemID := range patch.EquippedItems {
			if itemID == "" {
				p = p.EquipItem(slot, "")
				continue
			}
			item, ok := shop.ItemByID(itemID)
			if !ok {
				return p, fmt.Errorf("%w: unknown item %q", errs.ErrInvalidInput, itemID)
			}
			if string(item.Category) != slot {
				return p, fmt.Errorf("%w: item %q does not fit slot %q", errs.ErrInvalidInput, itemID, slot)
			}
			if !p.Owns(itemID) {
				return p, errs.ErrNotOwned
			}
			p = p.EquipItem(slot, itemID)
		}
		return p.Normalize(), nil
	})
}

// RecordAnswer applies the per-answer ledger operations: a correct
// answer extends the streak and the correct-answer counter, an
// incorrect one resets the streak to zero.
func (g *GatewayHandler) RecordAnswer(ctx context.Context, userID string, correct bool) (profileDomain.Profile, error) {
	if _, err := g.FetchOrInit(ctx, userID); err != nil {
		return profileDomain.Profile{}, err
	}
	return g.store.Update(ctx, userID, func(p profileDomain.Profile) (profileDomain.Profile, error) {
		if correct {
			p = p.IncrementStreak().IncrementCorrectAnswers()
		} else {
			p = p.ResetStreak()
		}
		return p, nil
	})
}

// SettleRound converts a finished round into ledger operations: XP and
// credits at the mode's per-correct rates, one games-played tick, and
// any achievements the score unlocks. It returns the updated profile
// and the ids unlocked by this round.
func (g *GatewayHandler) SettleRound(ctx context.Context, userID, modeID string, score int) (profileDomain.Profile, []string, error) {
	mode, err := gameDomain.ModeByID(modeID)
	if err != nil {
		return profileDomain.Profile{}, nil, err
	}
	score = mode.ClampScore(score)

	if _, err := g.FetchOrInit(ctx, userID); err != nil {
		return profileDomain.Profile{}, nil, err
	}

	var unlocked []string
	p, err := g.store.Update(ctx, userID, func(p profileDomain.Profile) (profileDomain.Profile, error) {
		unlocked = unlocked[:0]
		p = p.AddXP(score * mode.XPPerCorrect)
		p = p.AddCredits(score * mode.CreditsPerCorrect)
		p = p.IncrementGamesPlayed()
		for _, id := range mode.UnlockedBy(score) {
			if !p.HasAchievement(id) {
				unlocked = append(unlocked, id)
				p = p.UnlockAchievement(id)
			}
		}
		return p, nil
	})
	if err != nil {
		return profileDomain.Profile{}, nil, err
	}
	return p, unlocked, nil
}
