package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Account  *AccountHandler
}

func health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NewRouter(h Handlers, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	r.Get("/health", health)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Get("/{id}", h.Products.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Post("/items", h.Cart.AddItem)
			r.Post("/items/{product_id}/increase", h.Cart.Increase)
			r.Post("/items/{product_id}/decrease", h.Cart.Decrease)
			r.Delete("/items/{product_id}", h.Cart.RemoveItem)
		})

		r.Get("/checkout", h.Checkout.Confirm)
		r.Post("/checkout", h.Checkout.Place)

		r.Post("/auth/login", h.Account.Login)
		r.Post("/auth/signup", h.Account.Signup)
		r.Get("/me", h.Account.Me)
		r.Get("/orders", h.Account.Orders)
		r.Get("/wishlist", h.Account.Wishlist)
		r.Delete("/wishlist/{id}", h.Account.RemoveWish)
	})

	return r
}
