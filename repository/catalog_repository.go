package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"ordering-service/models"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found in catalog")

// CatalogRepository stores the menu catalog. The backing medium is the
// original products JSON file; mutations hold a lock across the whole
// read-modify-write so concurrent admin edits serialize.
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*models.Catalog, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id string, apply func(*models.Product)) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.Product, error)
}

type fileCatalogRepo struct {
	path string
	mu   sync.Mutex
}

func NewFileCatalogRepo(path string) CatalogRepository {
	return &fileCatalogRepo{path: path}
}

func (r *fileCatalogRepo) GetCatalog(_ context.Context) (*models.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *fileCatalogRepo) CreateProduct(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, err := r.load()
	if err != nil {
		return err
	}
	cat.Products = append(cat.Products, *p)
	return r.save(cat)
}

func (r *fileCatalogRepo) UpdateProduct(_ context.Context, id string, apply func(*models.Product)) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range cat.Products {
		if cat.Products[i].ID == id {
			apply(&cat.Products[i])
			cat.Products[i].ID = id // id is immutable
			if err := r.save(cat); err != nil {
				return nil, err
			}
			p := cat.Products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *fileCatalogRepo) DeleteProduct(_ context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range cat.Products {
		if cat.Products[i].ID == id {
			deleted := cat.Products[i]
			cat.Products = append(cat.Products[:i], cat.Products[i+1:]...)
			if err := r.save(cat); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *fileCatalogRepo) load() (*models.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var cat models.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if cat.Products == nil {
		cat.Products = []models.Product{}
	}
	return &cat, nil
}

func (r *fileCatalogRepo) save(cat *models.Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
