package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ordering-service/models"
	"ordering-service/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 60 * time.Second
)

type ProductService interface {
	GetCatalog(ctx context.Context) (*models.Catalog, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.Product, error)
}

type productService struct {
	repo     repository.CatalogRepository
	cache    *redis.Client // nil disables caching
	validate *validator.Validate
	logger   *zap.Logger
}

func NewProductService(repo repository.CatalogRepository, cache *redis.Client, logger *zap.Logger) ProductService {
	return &productService{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

// GetCatalog returns the whole menu, served from Redis for up to 60 seconds
// to keep repeated menu loads off the catalog file.
func (s *productService) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, catalogCacheKey).Result(); err == nil {
			var cat models.Catalog
			if err := json.Unmarshal([]byte(raw), &cat); err == nil {
				return &cat, nil
			}
		}
	}

	cat, err := s.repo.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cat); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache catalog", zap.Error(err))
			}
		}
	}
	return cat, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	cat, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cat.Products {
		if cat.Products[i].ID == id {
			return &cat.Products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *productService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	p.ID = "prod-" + uuid.NewString()

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error) {
	p, err := s.repo.UpdateProduct(ctx, id, func(existing *models.Product) {
		upd.ApplyTo(existing)
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.repo.DeleteProduct(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

func (s *productService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}
