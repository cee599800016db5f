package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductReader is the read side of the catalog repository
type ProductReader interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// Service serves the catalog through a read-through cache
type Service struct {
	repo   ProductReader
	cache  ProductCache
	sfg    singleflight.Group // Prevents cache stampede
	logger *zap.Logger
}

func NewService(repo ProductReader, cache ProductCache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	v, err, _ := s.sfg.Do(allProductsKey, func() (interface{}, error) {
		products, err := s.cache.GetAll(ctx)
		if err == nil {
			return products, nil
		}
		s.logCacheError("get all", err)

		products, err = s.repo.GetAllProducts(ctx)
		if err != nil {
			return nil, err
		}

		go s.fill("set all", func(ctx context.Context) error {
			return s.cache.SetAll(ctx, products)
		})
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Product), nil
}

// GetProduct returns ErrProductNotFound for unknown ids
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	v, err, _ := s.sfg.Do(productKey(id), func() (interface{}, error) {
		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil
		}
		s.logCacheError("get", err)

		product, err = s.repo.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		go s.fill("set", func(ctx context.Context) error {
			return s.cache.Set(ctx, product)
		})
		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

// Refresh drops cached entries for every product in the database and warms the
// list cache. Run after migrations so seed changes are visible immediately.
func (s *Service) Refresh(ctx context.Context) error {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	if err := s.cache.Delete(ctx, ids...); err != nil {
		s.logCacheError("delete", err)
	}
	if err := s.cache.SetAll(ctx, products); err != nil {
		s.logCacheError("set all", err)
	}

	s.logger.Info("catalog cache refreshed", zap.Int("products", len(products)))
	return nil
}

func (s *Service) fill(op string, set func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := set(ctx); err != nil {
		s.logCacheError(op, err)
	}
}

// logCacheError logs cache failures but not misses; the caller falls back to the repository
func (s *Service) logCacheError(op string, err error) {
	if errors.Is(err, ErrCacheMiss) {
		return
	}
	s.logger.Warn("catalog cache error", zap.String("op", op), zap.Error(err))
}
