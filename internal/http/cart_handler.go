package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/ledger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LedgerProvider hands out the cart ledger of a session
type LedgerProvider interface {
	Get(sessionID string) *ledger.Ledger
}

type CartHandler struct {
	sessions LedgerProvider
	catalog  ProductCatalog
	timeout  time.Duration
	logger   *zap.Logger
}

func NewCartHandler(sessions LedgerProvider, catalog ProductCatalog, timeout time.Duration, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  catalog,
		timeout:  timeout,
		logger:   logger,
	}
}

// productID accepts both JSON strings and numbers and keeps the string form
type productID string

func (id *productID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = productID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return errors.New("product_id must be an integer or a string")
	}
	*id = productID(n.String())
	return nil
}

type AddItemRequestDTO struct {
	ProductID productID `json:"product_id"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Get(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, newCartView(l.Snapshot()))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.catalog.GetProduct(ctx, string(req.ProductID))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	item, err := catalog.ToLineItem(product, req.Color, req.Size, req.Quantity)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	sessionID := getSessionID(r.Context())
	l := h.sessions.Get(sessionID)
	l.Add(item)

	h.logger.Debug("cart item added",
		zap.String("session_id", sessionID),
		zap.String("product_id", item.ProductID),
		zap.String("color", item.SelectedColor),
		zap.String("size", item.SelectedSize),
		zap.Int("quantity", item.Quantity))

	respondJSON(w, http.StatusCreated, newCartView(l.Snapshot()))
}

// POST /api/v1/cart/items/{product_id}/increase?color=&size=
func (h *CartHandler) Increase(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*ledger.Ledger).Increase)
}

// POST /api/v1/cart/items/{product_id}/decrease?color=&size=
func (h *CartHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*ledger.Ledger).Decrease)
}

// DELETE /api/v1/cart/items/{product_id}?color=&size=
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*ledger.Ledger).Remove)
}

// mutate applies op to the entry named by the request. Unknown entries are
// left alone and the current cart is returned.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, op func(*ledger.Ledger, domain.Key)) {
	key, ok := keyFromRequest(w, r)
	if !ok {
		return
	}

	l := h.sessions.Get(getSessionID(r.Context()))
	op(l, key)

	respondJSON(w, http.StatusOK, newCartView(l.Snapshot()))
}

func keyFromRequest(w http.ResponseWriter, r *http.Request) (domain.Key, bool) {
	key := domain.Key{
		ProductID: chi.URLParam(r, "product_id"),
		Color:     r.URL.Query().Get("color"),
		Size:      r.URL.Query().Get("size"),
	}
	if key.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return domain.Key{}, false
	}
	if key.Color == "" || key.Size == "" {
		respondError(w, http.StatusBadRequest, "missing_variant", "color and size query parameters are required")
		return domain.Key{}, false
	}
	return key, true
}
