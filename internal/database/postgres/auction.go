package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func listAuction(ctx context.Context, q querier, limit, offset int) ([]domain.Listing, error) {
	rows, err := q.Query(ctx, `
		SELECT `+listingColumns+` FROM listings
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list auction: %w", err)
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}
	return listings, nil
}

func listListingsBySeller(ctx context.Context, q querier, sellerID string) ([]domain.Listing, error) {
	rows, err := q.Query(ctx, `
		SELECT `+listingColumns+` FROM listings
		WHERE seller_id = $1
		ORDER BY created_at DESC, id DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}
	return listings, nil
}

func countListings(ctx context.Context, q querier, sellerID string) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM listings WHERE seller_id = $1`, sellerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

func createListing(ctx context.Context, q querier, l *domain.Listing) error {
	err := q.QueryRow(ctx, `
		INSERT INTO listings (seller_id, seller_name, item_name, item_type, rarity, attack, defense, hp, crit, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		l.SellerID, l.SellerName, l.ItemName, l.ItemType, l.Rarity,
		l.Bonuses.Attack, l.Bonuses.Defense, l.Bonuses.HP, l.Bonuses.Crit,
		l.Price, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// takeListing deletes a listing and returns it. Concurrent callers block on
// the row lock; only the first sees the row.
func takeListing(ctx context.Context, q querier, id int64, sellerID string) (*domain.Listing, error) {
	l, err := scanListing(q.QueryRow(ctx, `
		DELETE FROM listings
		WHERE id = $1 AND ($2 = '' OR seller_id = $2)
		RETURNING `+listingColumns, id, sellerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take listing: %w", err)
	}
	return &l, nil
}
