package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/pixora/storefront/internal/domain/cart"
	"github.com/pixora/storefront/internal/domain/catalog"
)

// sessionHeader carries the cart session ID. When a request arrives without
// one, a new session is minted and echoed back so the client can persist it.
const sessionHeader = "X-Session-ID"

func (h *Handler) sessionCart(w http.ResponseWriter, r *http.Request) *cart.Cart {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(sessionHeader, id)
	return h.sessions.Cart(id)
}

type cartLineDTO struct {
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type cartDTO struct {
	Lines     []cartLineDTO `json:"lines"`
	ItemCount int           `json:"item_count"`
	Subtotal  float64       `json:"subtotal"`
}

func toCartDTO(c *cart.Cart) cartDTO {
	lines := c.Lines()
	out := cartDTO{
		Lines:     make([]cartLineDTO, len(lines)),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal().InexactFloat64(),
	}
	for i, l := range lines {
		out.Lines[i] = cartLineDTO{Product: toProductDTO(l.Product), Quantity: l.Quantity}
	}
	return out
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartDTO(h.sessionCart(w, r)))
}

type addCartItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty < 1 {
		writeError(w, http.StatusUnprocessableEntity, "quantity must be greater than 0")
		return
	}

	p, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	c := h.sessionCart(w, r)
	c.AddItem(p, qty)
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

type updateCartItemReq struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemReq
	if !decodeBody(w, r, &req) {
		return
	}

	c := h.sessionCart(w, r)
	c.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	c := h.sessionCart(w, r)
	c.RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	c := h.sessionCart(w, r)
	c.Clear()
	writeJSON(w, http.StatusOK, toCartDTO(c))
}
