package service

import (
	"context"

	"romarket/internal/model"
)

// AuthService defines operations for seller registration and login.
type AuthService interface {
	// Register creates a new seller account. The returned record carries
	// only the public registration fields.
	Register(ctx context.Context, req *model.AuthRequest) (*model.Seller, error)

	// Login authenticates a seller and returns the full seller record.
	Login(ctx context.Context, req *model.AuthRequest) (*model.Seller, error)
}

// ListingService defines operations for marketplace listings.
type ListingService interface {
	// GetActive retrieves active in-stock listings, newest first.
	GetActive(ctx context.Context) ([]model.Listing, error)

	// Create validates and creates a new listing, returning its ID.
	Create(ctx context.Context, req *model.ListingRequest) (int, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder purchases a listing: prices it with its discount,
	// computes the platform commission and decrements stock.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderCreatedResponse, error)

	// GetBySeller retrieves a seller's orders, newest first.
	GetBySeller(ctx context.Context, sellerID int) ([]model.Order, error)

	// GetRecent retrieves the most recent orders across all sellers.
	GetRecent(ctx context.Context) ([]model.Order, error)
}
