package service

import (
	"context"
	"fmt"

	"romarket/internal/config"
	"romarket/internal/model"
	"romarket/internal/pricing"
	"romarket/internal/repository"

	"github.com/rs/zerolog"
)

// recentOrdersLimit caps the unscoped order listing.
const recentOrdersLimit = 100

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	listingRepo repository.ListingRepository
	cfg         config.MarketplaceConfig
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	listingRepo repository.ListingRepository,
	cfg config.MarketplaceConfig,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		cfg:         cfg,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder purchases a listing. The listing is priced with its discount,
// the platform commission is recorded against the payout card, and stock is
// decremented, all within one transaction.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderCreatedResponse, error) {
	if req.ProductID == 0 || req.BuyerEmail == "" || req.RobloxUsername == "" {
		s.logger.Warn().Int("product_id", req.ProductID).Msg("order missing required fields")
		return nil, model.ErrMissingFields
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	listing, err := s.listingRepo.GetForPurchase(ctx, tx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if listing == nil {
		err = model.ErrProductNotFound
		return nil, err
	}
	if listing.Stock < 1 {
		s.logger.Debug().Int("product_id", req.ProductID).Msg("listing out of stock")
		err = model.ErrOutOfStock
		return nil, err
	}

	total := pricing.RoundCents(listing.Price * (1 - float64(listing.Discount)/100))
	commission := pricing.Commission(total, s.cfg.CommissionRate)

	record := &model.OrderRecord{
		ProductID:      req.ProductID,
		SellerID:       listing.SellerID,
		BuyerEmail:     req.BuyerEmail,
		RobloxUsername: req.RobloxUsername,
		Amount:         listing.Amount,
		TotalPrice:     total,
		Commission:     commission,
		CommissionCard: s.cfg.CommissionCard,
		Status:         model.OrderStatusPending,
	}

	var orderID int
	if orderID, err = s.orderRepo.Create(ctx, tx, record); err != nil {
		s.logger.Error().Err(err).Int("product_id", req.ProductID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.listingRepo.DecrementStock(ctx, tx, req.ProductID); err != nil {
		s.logger.Error().Err(err).Int("product_id", req.ProductID).Msg("failed to decrement stock")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int("product_id", req.ProductID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", orderID).
		Int("product_id", req.ProductID).
		Int("seller_id", listing.SellerID).
		Float64("total_price", total).
		Float64("commission", commission).
		Msg("order created successfully")

	return &model.OrderCreatedResponse{
		Success:        true,
		OrderID:        orderID,
		TotalPrice:     total,
		Commission:     commission,
		CommissionCard: s.cfg.CommissionCard,
	}, nil
}

// GetBySeller retrieves a seller's orders, newest first.
func (s *orderService) GetBySeller(ctx context.Context, sellerID int) ([]model.Order, error) {
	orders, err := s.orderRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error().Err(err).Int("seller_id", sellerID).Msg("failed to get seller orders")
		return nil, fmt.Errorf("failed to get seller orders: %w", err)
	}

	s.logger.Debug().
		Int("seller_id", sellerID).
		Int("count", len(orders)).
		Msg("retrieved seller orders")

	return orders, nil
}

// GetRecent retrieves the most recent orders across all sellers.
func (s *orderService) GetRecent(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetRecent(ctx, recentOrdersLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get recent orders")
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}

	return orders, nil
}
