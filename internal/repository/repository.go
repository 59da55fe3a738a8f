package repository

import (
	"context"

	"romarket/internal/model"

	"github.com/jackc/pgx/v5"
)

// SellerRepository defines the interface for seller data access operations.
type SellerRepository interface {
	// Create inserts a new seller and returns the created record with its
	// assigned ID. A duplicate email returns model.ErrEmailTaken.
	Create(ctx context.Context, username, email, passwordHash, cardNumber string) (*model.Seller, error)

	// GetByCredentials retrieves a seller by email and password hash.
	// A credential miss returns (nil, nil).
	GetByCredentials(ctx context.Context, email, passwordHash string) (*model.Seller, error)
}

// ListingRepository defines the interface for marketplace listing data
// access operations.
type ListingRepository interface {
	// Create inserts a new listing and returns its assigned ID.
	Create(ctx context.Context, req *model.ListingRequest) (int, error)

	// GetActive retrieves active in-stock listings with seller details,
	// newest first.
	GetActive(ctx context.Context) ([]model.Listing, error)

	// GetForPurchase retrieves the pricing subset of an active listing
	// within the provided transaction, locking the row for update.
	// An inactive or missing listing returns (nil, nil).
	GetForPurchase(ctx context.Context, tx pgx.Tx, id int) (*model.PurchaseInfo, error)

	// DecrementStock reduces a listing's stock by one within the provided
	// transaction.
	DecrementStock(ctx context.Context, tx pgx.Tx, id int) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction and
	// returns its assigned ID.
	Create(ctx context.Context, tx pgx.Tx, order *model.OrderRecord) (int, error)

	// GetBySeller retrieves a seller's orders, newest first.
	GetBySeller(ctx context.Context, sellerID int) ([]model.Order, error)

	// GetRecent retrieves the most recent orders across all sellers.
	GetRecent(ctx context.Context, limit int) ([]model.Order, error)
}
