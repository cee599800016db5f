package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/go_storefront/internal/account"
	"github.com/go-chi/chi/v5"
)

// SessionTracker is a LedgerProvider that reports sessions it expires
type SessionTracker interface {
	LedgerProvider
	OnExpire(fn func(sessionID string))
}

type AccountHandler struct {
	accounts *account.Service
	wishlist *account.Wishlist
	sessions SessionTracker
}

// NewAccountHandler ties wishlists to the session lifetime: a wishlist is
// dropped together with the idle cart of its session.
func NewAccountHandler(accounts *account.Service, wishlist *account.Wishlist, sessions SessionTracker) *AccountHandler {
	sessions.OnExpire(wishlist.Drop)
	return &AccountHandler{
		accounts: accounts,
		wishlist: wishlist,
		sessions: sessions,
	}
}

// wishlistSession returns the caller's session id and marks the session active
func (h *AccountHandler) wishlistSession(r *http.Request) string {
	sessionID := getSessionID(r.Context())
	h.sessions.Get(sessionID)
	return sessionID
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/v1/auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /api/v1/auth/signup
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req account.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.accounts.Signup(req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// GET /api/v1/me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.accounts.Profile())
}

// GET /api/v1/orders
func (h *AccountHandler) Orders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.accounts.Orders())
}

// GET /api/v1/wishlist
func (h *AccountHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wishlist.List(h.wishlistSession(r)))
}

// DELETE /api/v1/wishlist/{id}
func (h *AccountHandler) RemoveWish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	respondJSON(w, http.StatusOK, h.wishlist.Remove(h.wishlistSession(r), id))
}
