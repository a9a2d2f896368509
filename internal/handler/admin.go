package handler

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pixora/storefront/internal/domain/catalog"
)

// Admin-create defaults for fields the form does not collect.
const (
	newProductDescription = "New product added from admin."
	newProductHighlight   = "New listing"
)

type addProductReq struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Image    string   `json:"image"`
}

// addProduct validates the admin form input at the boundary (the store
// itself trusts its callers), generates a unique id from the name, fills
// unsupplied fields with the storefront defaults, and prepends the product.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductReq
	if !decodeBody(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil {
		writeError(w, http.StatusBadRequest, "name and price are required")
		return
	}
	if math.IsNaN(*req.Price) || math.IsInf(*req.Price, 0) || *req.Price < 0 {
		writeError(w, http.StatusUnprocessableEntity, "price must be a valid non-negative number")
		return
	}

	category := req.Category
	if category == "" {
		category = catalog.SeedCategory()
	}
	image := req.Image
	if image == "" {
		image = catalog.SeedImage()
	}

	p := catalog.Product{
		ID:          catalog.NewProductID(name, time.Now()),
		Name:        name,
		Category:    category,
		Price:       decimal.NewFromFloat(*req.Price),
		Image:       image,
		Description: newProductDescription,
		Highlights:  []string{newProductHighlight},
	}
	h.catalog.Add(p)

	writeJSON(w, http.StatusCreated, toProductDTO(p))
}

type updateProductReq struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Highlights  *[]string `json:"highlights"`
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProductReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Price != nil && (math.IsNaN(*req.Price) || math.IsInf(*req.Price, 0) || *req.Price < 0) {
		writeError(w, http.StatusUnprocessableEntity, "price must be a valid non-negative number")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}

	if _, err := h.catalog.Get(id); err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	patch := catalog.Patch{
		Name:        req.Name,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Highlights:  req.Highlights,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		patch.Price = &price
	}
	h.catalog.Update(id, patch)

	p, _ := h.catalog.Get(id)
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	h.catalog.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

type metricsDTO struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	TopCategory   string  `json:"top_category"`
}

func (h *Handler) adminMetrics(w http.ResponseWriter, _ *http.Request) {
	m := h.catalog.Metrics()
	writeJSON(w, http.StatusOK, metricsDTO{
		TotalProducts: m.TotalProducts,
		TotalValue:    m.TotalValue.InexactFloat64(),
		TopCategory:   m.TopCategory,
	})
}
