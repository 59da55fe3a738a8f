package repository

import (
	"context"
	"fmt"

	"romarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// listingRepository implements the ListingRepository interface using PostgreSQL.
type listingRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewListingRepository creates a new PostgreSQL-backed listing repository.
func NewListingRepository(pool *pgxpool.Pool, logger zerolog.Logger) ListingRepository {
	return &listingRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "listing").Logger(),
	}
}

// Create inserts a new listing and returns its assigned ID.
func (r *listingRepository) Create(ctx context.Context, req *model.ListingRequest) (int, error) {
	query := `
		INSERT INTO products (seller_id, product_type, amount, price, discount, delivery_time, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query,
		req.SellerID,
		req.ProductType,
		req.Amount,
		req.Price,
		req.Discount,
		req.DeliveryTime,
		req.Stock,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Int("seller_id", req.SellerID).Msg("failed to create listing")
		return 0, fmt.Errorf("failed to create listing: %w", err)
	}

	r.logger.Debug().
		Int("listing_id", id).
		Int("seller_id", req.SellerID).
		Msg("listing created")

	return id, nil
}

// GetActive retrieves active in-stock listings with seller details, newest first.
func (r *listingRepository) GetActive(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT p.id, p.product_type, p.amount, p.price, COALESCE(p.discount, 0),
		       p.delivery_time, p.stock, s.username, COALESCE(s.rating, 0),
		       (SELECT COUNT(*) FROM reviews WHERE product_id = p.id) AS review_count
		FROM products p
		JOIN sellers s ON p.seller_id = s.id
		WHERE p.is_active = true AND p.stock > 0
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query listings")
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		var l model.Listing
		err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Amount,
			&l.Price,
			&l.Discount,
			&l.DeliveryTime,
			&l.Stock,
			&l.Seller,
			&l.Rating,
			&l.Reviews,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan listing row")
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating listing rows")
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return listings, nil
}

// GetForPurchase retrieves the pricing subset of an active listing within
// the provided transaction, locking the row for update.
func (r *listingRepository) GetForPurchase(ctx context.Context, tx pgx.Tx, id int) (*model.PurchaseInfo, error) {
	query := `
		SELECT seller_id, amount, price, COALESCE(discount, 0), stock
		FROM products
		WHERE id = $1 AND is_active = true
		FOR UPDATE
	`

	var info model.PurchaseInfo
	err := tx.QueryRow(ctx, query, id).Scan(
		&info.SellerID,
		&info.Amount,
		&info.Price,
		&info.Discount,
		&info.Stock,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("listing_id", id).Msg("listing not found or inactive")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("listing_id", id).Msg("failed to query listing for purchase")
		return nil, fmt.Errorf("failed to query listing for purchase: %w", err)
	}

	return &info, nil
}

// DecrementStock reduces a listing's stock by one within the provided transaction.
func (r *listingRepository) DecrementStock(ctx context.Context, tx pgx.Tx, id int) error {
	query := `
		UPDATE products
		SET stock = stock - 1
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int("listing_id", id).Msg("failed to decrement stock")
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	return nil
}
