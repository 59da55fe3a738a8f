package service

import (
	"context"
	"fmt"

	"romarket/internal/config"
	"romarket/internal/model"
	"romarket/internal/repository"

	"github.com/rs/zerolog"
)

// listingService implements ListingService.
type listingService struct {
	listingRepo repository.ListingRepository
	cfg         config.MarketplaceConfig
	logger      zerolog.Logger
}

// NewListingService creates a new listing service.
func NewListingService(listingRepo repository.ListingRepository, cfg config.MarketplaceConfig, logger zerolog.Logger) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		cfg:         cfg,
		logger:      logger.With().Str("service", "listing").Logger(),
	}
}

// GetActive retrieves active in-stock listings, newest first.
func (s *listingService) GetActive(ctx context.Context) ([]model.Listing, error) {
	listings, err := s.listingRepo.GetActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get listings")
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	s.logger.Debug().Int("count", len(listings)).Msg("retrieved listings")

	return listings, nil
}

// Create validates and creates a new listing.
func (s *listingService) Create(ctx context.Context, req *model.ListingRequest) (int, error) {
	if req.SellerID == 0 || req.Amount == 0 || req.Price == 0 {
		s.logger.Warn().Int("seller_id", req.SellerID).Msg("listing missing required fields")
		return 0, model.ErrMissingFields
	}

	if req.Discount < 0 || req.Discount > 100 {
		return 0, model.NewDomainError(model.ErrCodeMissingField, "Discount must be between 0 and 100")
	}

	// Apply defaults matching the listing form.
	if req.ProductType == "" {
		req.ProductType = "Robux"
	}
	if req.DeliveryTime == "" {
		req.DeliveryTime = s.cfg.DefaultDeliveryTime
	}
	if req.Stock == 0 {
		req.Stock = 1
	}

	id, err := s.listingRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Int("seller_id", req.SellerID).Msg("failed to create listing")
		return 0, fmt.Errorf("failed to create listing: %w", err)
	}

	s.logger.Info().
		Int("listing_id", id).
		Int("seller_id", req.SellerID).
		Int("amount", req.Amount).
		Msg("listing created")

	return id, nil
}
