package repository

import (
	"context"
	"errors"
	"fmt"

	"romarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// sellerRepository implements the SellerRepository interface using PostgreSQL.
type sellerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSellerRepository creates a new PostgreSQL-backed seller repository.
func NewSellerRepository(pool *pgxpool.Pool, logger zerolog.Logger) SellerRepository {
	return &sellerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "seller").Logger(),
	}
}

// Create inserts a new seller and returns the created record.
func (r *sellerRepository) Create(ctx context.Context, username, email, passwordHash, cardNumber string) (*model.Seller, error) {
	query := `
		INSERT INTO sellers (username, email, password_hash, card_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email
	`

	var seller model.Seller
	err := r.pool.QueryRow(ctx, query, username, email, passwordHash, cardNumber).
		Scan(&seller.ID, &seller.Username, &seller.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Debug().Str("email", email).Msg("email already registered")
			return nil, model.ErrEmailTaken
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to create seller")
		return nil, fmt.Errorf("failed to create seller: %w", err)
	}

	r.logger.Info().
		Int("seller_id", seller.ID).
		Str("username", seller.Username).
		Msg("seller created")

	return &seller, nil
}

// GetByCredentials retrieves a seller by email and password hash.
func (r *sellerRepository) GetByCredentials(ctx context.Context, email, passwordHash string) (*model.Seller, error) {
	query := `
		SELECT id, username, email, COALESCE(rating, 0), COALESCE(total_sales, 0), COALESCE(card_number, '')
		FROM sellers
		WHERE email = $1 AND password_hash = $2
	`

	var seller model.Seller
	err := r.pool.QueryRow(ctx, query, email, passwordHash).Scan(
		&seller.ID,
		&seller.Username,
		&seller.Email,
		&seller.Rating,
		&seller.TotalSales,
		&seller.CardNumber,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("email", email).Msg("credentials did not match")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query seller")
		return nil, fmt.Errorf("failed to query seller: %w", err)
	}

	return &seller, nil
}
