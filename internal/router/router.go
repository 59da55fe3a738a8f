package router

import (
	"net/http"

	"romarket/internal/handler"
	"romarket/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/sellers", authHandler.Auth)
	mux.HandleFunc("/api/sellers/", authHandler.Auth)

	// Listing handler function
	listingRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			listingHandler.Create(w, r)
			return
		}
		listingHandler.GetAll(w, r)
	}

	// Register listing routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", listingRouteHandler)
	mux.HandleFunc("/api/products/", listingRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			orderHandler.Create(w, r)
			return
		}
		orderHandler.List(w, r)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> CorrelationID
	var h http.Handler = mux
	h = middleware.CorrelationID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
