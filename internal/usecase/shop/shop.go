package shop

import (
	"context"
	"fmt"

	profileDomain "mattespel/internal/domain/profile"
	shopDomain "mattespel/internal/domain/shop"
	errs "mattespel/internal/errors"
	profileUC "mattespel/internal/usecase/profile"
)

// ShopUsecaseHandler validates purchase and equip transactions against
// the server-held catalog. Prices and categories are re-derived from
// the catalog, never trusted from the caller.
type ShopUsecaseHandler struct {
	profiles profileUC.ProfileStorage
}

func NewShopUsecaseHandler(profiles profileUC.ProfileStorage) *ShopUsecaseHandler {
	return &ShopUsecaseHandler{profiles: profiles}
}

// Purchase debits the catalog price and adds the item to the owned set.
// clientPrice, when present, must match the catalog price; a mismatch
// means a manipulated client and rejects the transaction. Requires an
// existing profile (no lazy init on the purchase path).
func (s *ShopUsecaseHandler) Purchase(ctx context.Context, userID, itemID string, clientPrice *int) (profileDomain.Profile, error) {
	item, ok := shopDomain.ItemByID(itemID)
	if !ok {
		return profileDomain.Profile{}, fmt.Errorf("%w: unknown item %q", errs.ErrInvalidInput, itemID)
	}
	if clientPrice != nil && *clientPrice != item.Price {
		return profileDomain.Profile{}, fmt.Errorf("%w: price mismatch for item %q", errs.ErrInvalidInput, itemID)
	}

	return s.profiles.Update(ctx, userID, func(p profileDomain.Profile) (profileDomain.Profile, error) {
		if p.Owns(item.ID) {
			return p, errs.ErrAlreadyOwned
		}
		if p.Credits < item.Price {
			return p, errs.ErrInsufficientFunds
		}
		return p.SpendCredits(item.Price).AddPurchasedItem(item.ID), nil
	})
}

// Equip places an owned item into its slot. The slot is derived from
// the catalog entry; a caller-supplied category, when present, must
// agree with it.
func (s *ShopUsecaseHandler) Equip(ctx context.Context, userID, itemID, category string) (profileDomain.Profile, error) {
	item, ok := shopDomain.ItemByID(itemID)
	if !ok {
		return profileDomain.Profile{}, fmt.Errorf("%w: unknown item %q", errs.ErrInvalidInput, itemID)
	}
	if category != "" {
		parsed, err := shopDomain.ParseCategory(category)
		if err != nil {
			return profileDomain.Profile{}, err
		}
		if parsed != item.Category {
			return profileDomain.Profile{}, fmt.Errorf("%w: item %q belongs to slot %q", errs.ErrInvalidInput, itemID, item.Category)
		}
	}

	return s.profiles.Update(ctx, userID, func(p profileDomain.Profile) (profileDomain.Profile, error) {
		if !p.Owns(item.ID) {
			return p, errs.ErrNotOwned
		}
		return p.EquipItem(string(item.Category), item.ID), nil
	})
}
