package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	GetAll(ctx context.Context) ([]*domain.Product, error)
	SetAll(ctx context.Context, products []*domain.Product) error
	Delete(ctx context.Context, ids ...string) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopCache always misses. It is used when no Redis address is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*domain.Product, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, *domain.Product) error           { return nil }
func (NopCache) GetAll(context.Context) ([]*domain.Product, error)    { return nil, ErrCacheMiss }
func (NopCache) SetAll(context.Context, []*domain.Product) error      { return nil }
func (NopCache) Delete(context.Context, ...string) error              { return nil }
