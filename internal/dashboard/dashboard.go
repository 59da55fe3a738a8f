// Package dashboard implements the seller dashboard workflows: restoring a
// persisted session, login and registration, seller-scoped order loading,
// and product-listing creation. Workflow outcomes are reported through a
// structured Notifier rather than dialogs.
package dashboard

import (
	"context"
	"strconv"
	"sync"

	"romarket/internal/model"
	"romarket/internal/session"

	"github.com/rs/zerolog"
)

// Workflow errors.
var (
	// ErrSubmissionPending is returned when a login, registration or
	// listing submission is attempted while another one is in flight.
	ErrSubmissionPending = model.NewDomainError("SUBMISSION_PENDING", "Another submission is already in progress")

	// ErrNotLoggedIn is returned for seller-scoped operations while logged
	// out.
	ErrNotLoggedIn = model.NewDomainError("NOT_LOGGED_IN", "Seller is not logged in")
)

// API is the remote marketplace surface the dashboard depends on.
// *client.Client satisfies it.
type API interface {
	Login(ctx context.Context, email, password string) (*model.Seller, error)
	Register(ctx context.Context, username, email, password, cardNumber string) error
	Orders(ctx context.Context, sellerID int) ([]model.Order, error)
	CreateListing(ctx context.Context, req model.ListingRequest) (int, error)
}

// ListingForm holds the raw string inputs of the add-product form. Numeric
// fields are validated on submission; non-numeric input never reaches the
// network.
type ListingForm struct {
	Amount       string
	Price        string
	Discount     string
	DeliveryTime string
	Stock        string
}

// Dashboard drives the seller-facing workflows. It is safe for concurrent
// use: network completions may land on other goroutines than UI events.
type Dashboard struct {
	api      API
	session  *session.Manager
	notifier Notifier
	logger   zerolog.Logger

	defaultDeliveryTime string

	mu      sync.Mutex
	orders  []model.Order
	form    ListingForm
	pending bool
}

// Config holds dashboard construction options.
type Config struct {
	// DefaultDeliveryTime pre-fills the listing form.
	DefaultDeliveryTime string
}

// New creates a dashboard over the given API, session manager and notifier.
func New(api API, sess *session.Manager, notifier Notifier, cfg Config, logger zerolog.Logger) *Dashboard {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	d := &Dashboard{
		api:                 api,
		session:             sess,
		notifier:            notifier,
		logger:              logger.With().Str("component", "dashboard").Logger(),
		defaultDeliveryTime: cfg.DefaultDeliveryTime,
	}
	d.form = d.emptyForm()
	return d
}

// Start loads the orders of a session restored at startup. It is a no-op
// when no seller was persisted.
func (d *Dashboard) Start(ctx context.Context) {
	seller := d.session.Current()
	if seller == nil {
		return
	}
	d.LoadOrders(ctx)
}

// Seller returns the authenticated seller, or nil when logged out.
func (d *Dashboard) Seller() *model.Seller {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session.Current()
}

// LoggedIn reports whether a seller is authenticated.
func (d *Dashboard) LoggedIn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session.LoggedIn()
}

// Login authenticates the seller and, on success, persists the session and
// loads the seller's orders. While a submission is pending further ones are
// rejected with ErrSubmissionPending.
func (d *Dashboard) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		d.notifier.Notify(Notification{
			Level:   LevelError,
			Title:   "Login failed",
			Message: model.ErrMissingCredentials.Message,
		})
		return model.ErrMissingCredentials
	}

	if err := d.beginSubmission(); err != nil {
		return err
	}
	defer d.endSubmission()

	seller, err := d.api.Login(ctx, email, password)
	if err != nil {
		d.notifyFailure("Login failed", "Could not sign in", err)
		return err
	}

	d.mu.Lock()
	err = d.session.Login(*seller)
	d.mu.Unlock()
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to persist session after login")
		d.notifyFailure("Login failed", "Could not sign in", err)
		return err
	}

	d.notifier.Notify(Notification{
		Level:   LevelInfo,
		Title:   "Signed in",
		Message: "Welcome back, " + seller.Username + "!",
	})

	d.LoadOrders(ctx)
	return nil
}

// Register creates a seller account. A successful registration does not log
// the seller in; the user is prompted to proceed to login.
func (d *Dashboard) Register(ctx context.Context, username, email, password, cardNumber string) error {
	if username == "" || email == "" || password == "" {
		d.notifier.Notify(Notification{
			Level:   LevelError,
			Title:   "Registration failed",
			Message: model.ErrMissingFields.Message,
		})
		return model.ErrMissingFields
	}

	if err := d.beginSubmission(); err != nil {
		return err
	}
	defer d.endSubmission()

	if err := d.api.Register(ctx, username, email, password, cardNumber); err != nil {
		d.notifyFailure("Registration failed", "Could not register", err)
		return err
	}

	d.notifier.Notify(Notification{
		Level:   LevelInfo,
		Title:   "Registration successful",
		Message: "Now sign in with your credentials",
	})
	return nil
}

// Logout clears the persisted session and the loaded orders.
func (d *Dashboard) Logout() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.session.Logout(); err != nil {
		return err
	}
	d.orders = nil

	d.notifier.Notify(Notification{
		Level:   LevelInfo,
		Title:   "Signed out",
		Message: "See you soon!",
	})
	return nil
}

// LoadOrders fetches the authenticated seller's orders and replaces the
// local list wholesale. Failures are logged and leave the existing orders
// untouched; the loader never surfaces a user-facing error.
func (d *Dashboard) LoadOrders(ctx context.Context) {
	seller := d.Seller()
	if seller == nil {
		return
	}

	orders, err := d.api.Orders(ctx, seller.ID)
	if err != nil {
		d.logger.Warn().Err(err).Int("seller_id", seller.ID).Msg("failed to load orders")
		return
	}

	d.mu.Lock()
	d.orders = orders
	d.mu.Unlock()

	d.logger.Debug().Int("seller_id", seller.ID).Int("count", len(orders)).Msg("orders loaded")
}

// Orders returns a copy of the loaded orders.
func (d *Dashboard) Orders() []model.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	orders := make([]model.Order, len(d.orders))
	copy(orders, d.orders)
	return orders
}

// Form returns the current listing form values.
func (d *Dashboard) Form() ListingForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// UpdateForm replaces the listing form values.
func (d *Dashboard) UpdateForm(form ListingForm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = form
}

// AddListing validates the current form and submits a new product listing.
// Non-numeric amount/price/discount/stock values are rejected before any
// network call. On success the created listing ID is surfaced and the form
// is reset.
func (d *Dashboard) AddListing(ctx context.Context) error {
	seller := d.Seller()
	if seller == nil {
		return ErrNotLoggedIn
	}

	form := d.Form()
	req, err := d.buildListingRequest(seller.ID, form)
	if err != nil {
		d.notifier.Notify(Notification{
			Level:   LevelError,
			Title:   "Invalid product",
			Message: err.Error(),
		})
		return err
	}

	if err := d.beginSubmission(); err != nil {
		return err
	}
	defer d.endSubmission()

	id, err := d.api.CreateListing(ctx, req)
	if err != nil {
		d.notifyFailure("Could not add product", "Could not add product", err)
		return err
	}

	d.mu.Lock()
	d.form = d.emptyForm()
	d.mu.Unlock()

	d.notifier.Notify(Notification{
		Level:   LevelInfo,
		Title:   "Product added",
		Message: "Product ID: " + strconv.Itoa(id),
	})

	d.logger.Info().Int("seller_id", seller.ID).Int("product_id", id).Msg("listing created")
	return nil
}

// buildListingRequest parses and validates the raw form values.
func (d *Dashboard) buildListingRequest(sellerID int, form ListingForm) (model.ListingRequest, error) {
	amount, err := strconv.Atoi(form.Amount)
	if err != nil {
		return model.ListingRequest{}, model.NewDomainError(model.ErrCodeMissingField, "Amount must be a number")
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		return model.ListingRequest{}, model.NewDomainError(model.ErrCodeMissingField, "Price must be a number")
	}

	discount := 0
	if form.Discount != "" {
		discount, err = strconv.Atoi(form.Discount)
		if err != nil {
			return model.ListingRequest{}, model.NewDomainError(model.ErrCodeMissingField, "Discount must be a number")
		}
	}

	stock, err := strconv.Atoi(form.Stock)
	if err != nil {
		return model.ListingRequest{}, model.NewDomainError(model.ErrCodeMissingField, "Stock must be a number")
	}

	return model.ListingRequest{
		SellerID:     sellerID,
		ProductType:  "Robux",
		Amount:       amount,
		Price:        price,
		Discount:     discount,
		DeliveryTime: form.DeliveryTime,
		Stock:        stock,
	}, nil
}

// notifyFailure surfaces a workflow failure: server-rejected errors carry
// the server message verbatim, transport failures fall back to a generic
// message.
func (d *Dashboard) notifyFailure(title, fallback string, err error) {
	message := fallback
	if remote, ok := err.(*model.RemoteError); ok && remote.Message != "" {
		message = remote.Message
	}
	d.notifier.Notify(Notification{
		Level:   LevelError,
		Title:   title,
		Message: message,
	})
}

func (d *Dashboard) emptyForm() ListingForm {
	return ListingForm{
		DeliveryTime: d.defaultDeliveryTime,
		Stock:        "1",
	}
}

func (d *Dashboard) beginSubmission() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending {
		return ErrSubmissionPending
	}
	d.pending = true
	return nil
}

func (d *Dashboard) endSubmission() {
	d.mu.Lock()
	d.pending = false
	d.mu.Unlock()
}
