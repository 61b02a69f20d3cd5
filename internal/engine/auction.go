package engine

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/inventory"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

func (s *service) ListAuction(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	listings, err := s.store.ListAuction(ctx, repository.PageLimit(limit), max(0, offset))
	if err != nil {
		return nil, fmt.Errorf("failed to list auction: %w", err)
	}
	return listings, nil
}

// ListMyListings returns the open listings of one seller, newest first.
func (s *service) ListMyListings(ctx context.Context, id string) ([]domain.Listing, error) {
	if _, err := s.store.GetPlayer(ctx, id); err != nil {
		return nil, err
	}
	listings, err := s.store.ListListingsBySeller(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	return listings, nil
}

func (s *service) CreateListing(ctx context.Context, id string, itemID int64, price int) (*domain.Listing, error) {
	var out *domain.Listing
	err := s.run(ctx, ActionCreateListing, id, func(u *unit) error {
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		open, err := u.tx.CountListings(u.ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count listings: %w", err)
		}
		item := inventory.Find(items, itemID)
		if err := inventory.CheckListing(item, id, itemID, price, open, s.catalog.Rules.Auction.MaxListings); err != nil {
			return err
		}

		if err := u.tx.DeleteItems(u.ctx, item.ID); err != nil {
			return err
		}
		listing := domain.ListingFromItem(*item, u.player.Name, price, u.now)
		if err := u.tx.CreateListing(u.ctx, &listing); err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		u.emit(event.ListingCreated, event.ListingPayloadV1{ListingID: listing.ID, SellerID: id, Rarity: listing.Rarity, Price: price})
		out = &listing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BuyListing takes the listing out of the book first, so concurrent buyers
// race on the delete and only one of them sees it.
func (s *service) BuyListing(ctx context.Context, id string, listingID int64) (*domain.PurchaseResult, error) {
	var out *domain.PurchaseResult
	err := s.run(ctx, ActionBuyListing, id, func(u *unit) error {
		listing, err := u.tx.TakeListing(u.ctx, listingID, "")
		if err != nil {
			return fmt.Errorf("failed to take listing: %w", err)
		}
		if err := inventory.CheckPurchase(listing, id, listingID); err != nil {
			return err
		}
		if err := s.ledger.Debit(u.player, domain.ResourceGold, listing.Price, u.now); err != nil {
			return err
		}

		proceeds := s.catalog.Rules.Auction.SellerProceeds(listing.Price)
		if err := u.tx.AddGold(u.ctx, listing.SellerID, proceeds); err != nil {
			return fmt.Errorf("failed to pay seller: %w", err)
		}
		item, err := s.addItem(u, listing.ToItem(id, u.now))
		if err != nil {
			return err
		}

		u.emit(event.ListingSold, event.ListingPayloadV1{
			ListingID:      listing.ID,
			SellerID:       listing.SellerID,
			Rarity:         listing.Rarity,
			Price:          listing.Price,
			SellerProceeds: proceeds,
		})
		out = &domain.PurchaseResult{Listing: *listing, Item: *item, SellerProceeds: proceeds}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) CancelListing(ctx context.Context, id string, listingID int64) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := s.run(ctx, ActionCancelListing, id, func(u *unit) error {
		listing, err := u.tx.TakeListing(u.ctx, listingID, id)
		if err != nil {
			return fmt.Errorf("failed to take listing: %w", err)
		}
		if listing == nil {
			return fmt.Errorf("%w: id %d", domain.ErrListingNotFound, listingID)
		}
		item, err := s.addItem(u, listing.ToItem(id, u.now))
		if err != nil {
			return err
		}

		u.emit(event.ListingCancelled, event.ListingPayloadV1{ListingID: listing.ID, SellerID: id, Rarity: listing.Rarity, Price: listing.Price})
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
