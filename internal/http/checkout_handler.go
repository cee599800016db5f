package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/checkout"
)

type CheckoutHandler struct {
	sessions LedgerProvider
	checkout checkout.CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(sessions LedgerProvider, svc checkout.CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		checkout: svc,
		timeout:  timeout,
	}
}

// GET /api/v1/checkout
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	entries := h.sessions.Get(getSessionID(r.Context())).Snapshot()
	conf, err := h.checkout.Confirm(ctx, entries)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, conf)
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	entries := h.sessions.Get(sessionID).Snapshot()
	summary, err := h.checkout.Place(ctx, sessionID, entries)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, summary)
}
