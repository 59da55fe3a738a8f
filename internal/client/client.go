// Package client implements the typed HTTP+JSON client for the remote
// marketplace endpoints (sellers, orders, products). Every call takes a
// context and the underlying http.Client carries a request timeout, so a
// request that never resolves cannot wedge a workflow indefinitely.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"romarket/internal/model"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each remote call.
const DefaultTimeout = 15 * time.Second

// Config holds the remote endpoint URLs.
type Config struct {
	// AuthURL is the sellers endpoint (login/register).
	AuthURL string

	// OrdersURL is the orders endpoint.
	OrdersURL string

	// ProductsURL is the product-listings endpoint.
	ProductsURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Client calls the remote marketplace endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a marketplace API client.
func New(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
}

// Login authenticates a seller. A server rejection (success=false) is
// returned as *model.RemoteError carrying the server message.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Seller, error) {
	req := model.AuthRequest{
		Action:   model.AuthActionLogin,
		Email:    email,
		Password: password,
	}

	var resp model.AuthResponse
	if err := c.postJSON(ctx, c.cfg.AuthURL, req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		c.logger.Debug().Str("email", email).Str("error", resp.Error).Msg("login rejected")
		return nil, model.NewRemoteError(resp.Error)
	}
	if resp.Seller == nil {
		return nil, fmt.Errorf("login response missing seller record")
	}

	return resp.Seller, nil
}

// Register creates a seller account. Registration does not log the seller
// in; a successful return means the caller should proceed to login.
func (c *Client) Register(ctx context.Context, username, email, password, cardNumber string) error {
	req := model.AuthRequest{
		Action:     model.AuthActionRegister,
		Username:   username,
		Email:      email,
		Password:   password,
		CardNumber: cardNumber,
	}

	var resp model.AuthResponse
	if err := c.postJSON(ctx, c.cfg.AuthURL, req, &resp); err != nil {
		return err
	}

	if !resp.Success {
		c.logger.Debug().Str("email", email).Str("error", resp.Error).Msg("registration rejected")
		return model.NewRemoteError(resp.Error)
	}

	return nil
}

// Orders fetches the orders scoped to a seller, newest first. An absent
// orders array decodes as an empty slice.
func (c *Client) Orders(ctx context.Context, sellerID int) ([]model.Order, error) {
	url := c.cfg.OrdersURL + "?seller_id=" + strconv.Itoa(sellerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build orders request: %w", err)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orders request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp model.OrdersResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}

	c.logger.Debug().
		Int("seller_id", sellerID).
		Int("count", len(resp.Orders)).
		Msg("orders fetched")

	return resp.Orders, nil
}

// Listings fetches the active marketplace listings for the storefront.
func (c *Client) Listings(ctx context.Context) ([]model.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ProductsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listings request: %w", err)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listings request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp model.ListingsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode listings response: %w", err)
	}

	c.logger.Debug().Int("count", len(resp.Products)).Msg("listings fetched")

	return resp.Products, nil
}

// CreateListing submits a new product listing and returns the created
// listing ID.
func (c *Client) CreateListing(ctx context.Context, req model.ListingRequest) (int, error) {
	var resp model.ListingCreatedResponse
	if err := c.postJSON(ctx, c.cfg.ProductsURL, req, &resp); err != nil {
		return 0, err
	}

	if !resp.Success {
		c.logger.Debug().
			Int("seller_id", req.SellerID).
			Str("error", resp.Error).
			Msg("listing creation rejected")
		return 0, model.NewRemoteError(resp.Error)
	}

	return resp.ProductID, nil
}

// postJSON posts a JSON body and decodes the JSON response into out.
// Non-2xx statuses are not treated as transport failures: the endpoints
// report rejection through the success field, which callers inspect.
func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
