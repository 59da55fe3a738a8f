package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"romarket/internal/model"
	"romarket/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	sellerRepo repository.SellerRepository
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(sellerRepo repository.SellerRepository, logger zerolog.Logger) AuthService {
	return &authService{
		sellerRepo: sellerRepo,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new seller account.
func (s *authService) Register(ctx context.Context, req *model.AuthRequest) (*model.Seller, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		s.logger.Warn().Str("email", req.Email).Msg("registration missing required fields")
		return nil, model.ErrMissingFields
	}

	seller, err := s.sellerRepo.Create(ctx, req.Username, req.Email, hashPassword(req.Password), req.CardNumber)
	if err != nil {
		if err == model.ErrEmailTaken {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to register seller")
		return nil, fmt.Errorf("failed to register seller: %w", err)
	}

	s.logger.Info().
		Int("seller_id", seller.ID).
		Str("username", seller.Username).
		Msg("seller registered")

	return seller, nil
}

// Login authenticates a seller.
func (s *authService) Login(ctx context.Context, req *model.AuthRequest) (*model.Seller, error) {
	if req.Email == "" || req.Password == "" {
		s.logger.Warn().Str("email", req.Email).Msg("login missing credentials")
		return nil, model.ErrMissingCredentials
	}

	seller, err := s.sellerRepo.GetByCredentials(ctx, req.Email, hashPassword(req.Password))
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to look up seller")
		return nil, fmt.Errorf("failed to look up seller: %w", err)
	}

	if seller == nil {
		s.logger.Debug().Str("email", req.Email).Msg("invalid credentials")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().
		Int("seller_id", seller.ID).
		Str("username", seller.Username).
		Msg("seller logged in")

	return seller, nil
}

// hashPassword returns the hex-encoded SHA-256 digest of a password.
// Matches the hash stored by the registration path.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
