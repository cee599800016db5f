package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/money"
	"github.com/go-chi/chi/v5"
)

type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type ProductHandler struct {
	catalog ProductCatalog
	timeout time.Duration
}

func NewProductHandler(catalog ProductCatalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type ProductResponse struct {
	ID            string   `json:"id"`
	Brand         string   `json:"brand"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	SalePrice     *int64   `json:"sale_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	PriceText     string   `json:"price_text"`
	SalePriceText string   `json:"sale_price_text,omitempty"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	colors, sizes := catalog.Options(p)
	resp := ProductResponse{
		ID:        p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Image:     p.Image,
		Images:    catalog.Gallery(p),
		Colors:    colors,
		Sizes:     sizes,
		PriceText: money.FormatKRW(p.Price),
	}
	// a sale price that does not undercut the list price is never shown
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		resp.SalePriceText = money.FormatKRW(*p.SalePrice)
	}
	return resp
}

// GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := ProductsResponse{Products: make([]ProductResponse, len(products))}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.catalog.GetProduct(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(product))
}
