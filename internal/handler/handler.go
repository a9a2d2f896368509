// Package handler exposes the storefront HTTP API: catalog browsing, the
// session cart, and the API-key-gated admin surface.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pixora/storefront/internal/domain/auth"
	"github.com/pixora/storefront/internal/domain/catalog"
	"github.com/pixora/storefront/internal/session"
)

// Handler holds the stores and serves the API routes. Stores are injected;
// the handler owns no state of its own.
type Handler struct {
	catalog  *catalog.Store
	sessions *session.Manager
	keys     *auth.KeySet
}

// New constructs a Handler with the required dependencies.
func New(store *catalog.Store, sessions *session.Manager, keys *auth.KeySet) *Handler {
	return &Handler{
		catalog:  store,
		sessions: sessions,
		keys:     keys,
	}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Get("/products", h.listProducts)
		api.Get("/products/{id}", h.getProduct)
		api.Get("/categories", h.listCategories)

		api.Route("/cart", func(c chi.Router) {
			c.Get("/", h.getCart)
			c.Delete("/", h.clearCart)
			c.Post("/items", h.addCartItem)
			c.Patch("/items/{id}", h.updateCartItem)
			c.Delete("/items/{id}", h.removeCartItem)
		})

		api.Group(func(admin chi.Router) {
			admin.Use(h.requireAPIKey)
			admin.Post("/products", h.addProduct)
			admin.Patch("/products/{id}", h.updateProduct)
			admin.Delete("/products/{id}", h.removeProduct)
			admin.Get("/admin/metrics", h.adminMetrics)
		})
	})

	return r
}

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Code: status, Message: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
