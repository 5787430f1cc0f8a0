package router

import (
	"net/http"

	"harsha-hotel/internal/handler"
	"harsha-hotel/internal/middleware"
	"harsha-hotel/internal/web"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
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

	// Menu handler function
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			menuHandler.List(w, r)
		case http.MethodPost:
			menuHandler.Add(w, r)
		default:
			menuHandler.List(w, r) // responds 405
		}
	}

	// Register menu routes (both with and without trailing slash)
	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/aggregated" {
			orderHandler.Aggregated(w, r)
			return
		}

		if r.URL.Path != "/api/orders" && r.URL.Path != "/api/orders/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			orderHandler.List(w, r)
		case http.MethodPost:
			orderHandler.Place(w, r)
		default:
			orderHandler.List(w, r) // responds 405
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Embedded browser client
	mux.HandleFunc("/", web.Index)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID
	var h http.Handler = mux
	h = middleware.RequestID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
