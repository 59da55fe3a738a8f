package repository

import (
	"context"
	"fmt"

	"romarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order within the provided transaction and returns
// its assigned ID.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.OrderRecord) (int, error) {
	query := `
		INSERT INTO orders (product_id, seller_id, buyer_email, roblox_username,
		                    amount, total_price, commission, commission_card, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int
	err := tx.QueryRow(ctx, query,
		order.ProductID,
		order.SellerID,
		order.BuyerEmail,
		order.RobloxUsername,
		order.Amount,
		order.TotalPrice,
		order.Commission,
		order.CommissionCard,
		order.Status,
	).Scan(&id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("product_id", order.ProductID).
			Int("seller_id", order.SellerID).
			Msg("failed to create order")
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int("order_id", id).
		Int("seller_id", order.SellerID).
		Msg("order created")

	return id, nil
}

// GetBySeller retrieves a seller's orders, newest first.
func (r *orderRepository) GetBySeller(ctx context.Context, sellerID int) ([]model.Order, error) {
	query := `
		SELECT id, buyer_email, roblox_username, amount, total_price, commission, status, created_at
		FROM orders
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		r.logger.Error().Err(err).Int("seller_id", sellerID).Msg("failed to query seller orders")
		return nil, fmt.Errorf("failed to query seller orders: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// GetRecent retrieves the most recent orders across all sellers.
func (r *orderRepository) GetRecent(ctx context.Context, limit int) ([]model.Order, error) {
	query := `
		SELECT id, buyer_email, roblox_username, amount, total_price, commission, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query recent orders")
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// scanOrders collects order rows.
func (r *orderRepository) scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID,
			&o.BuyerEmail,
			&o.RobloxUsername,
			&o.Amount,
			&o.TotalPrice,
			&o.Commission,
			&o.Status,
			&o.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
