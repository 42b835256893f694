package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering-service/controllers"
	"ordering-service/middleware"
	"ordering-service/models"
	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock ProductService ---

type mockProductService struct {
	catalogFn func(ctx context.Context) (*models.Catalog, error)
	getFn     func(ctx context.Context, id string) (*models.Product, error)
	createFn  func(ctx context.Context, p *models.Product) (*models.Product, error)
	updateFn  func(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error)
	deleteFn  func(ctx context.Context, id string) (*models.Product, error)
}

func (m *mockProductService) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	return m.catalogFn(ctx)
}
func (m *mockProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return m.getFn(ctx, id)
}
func (m *mockProductService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return m.createFn(ctx, p)
}
func (m *mockProductService) UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error) {
	return m.updateFn(ctx, id, upd)
}
func (m *mockProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	return m.deleteFn(ctx, id)
}

func productRouter(svc services.ProductService, adminToken string) *gin.Engine {
	r := gin.New()
	pc := &controllers.ProductController{Products: svc, Logger: zap.NewNop()}
	r.GET("/api/products", pc.ListProducts)
	r.GET("/api/products/:id", pc.GetProduct)

	admin := r.Group("/api/products")
	admin.Use(middleware.AdminAuth(adminToken))
	admin.POST("", pc.CreateProduct)
	admin.PATCH("/:id", pc.UpdateProduct)
	admin.DELETE("/:id", pc.DeleteProduct)
	return r
}

func TestListProducts(t *testing.T) {
	svc := &mockProductService{
		catalogFn: func(_ context.Context) (*models.Catalog, error) {
			return &models.Catalog{Products: []models.Product{{ID: "prod-latte", Name: "Latte"}}}, nil
		},
	}
	r := productRouter(svc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var cat models.Catalog
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Len(t, cat.Products, 1)
}

func TestGetProduct_NotFoundResponse(t *testing.T) {
	svc := &mockProductService{
		getFn: func(_ context.Context, _ string) (*models.Product, error) {
			return nil, services.ErrProductNotFound
		},
	}
	r := productRouter(svc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/prod-nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestCreateProduct_RequiresAdminToken(t *testing.T) {
	svc := &mockProductService{
		createFn: func(_ context.Context, p *models.Product) (*models.Product, error) {
			p.ID = "prod-new"
			return p, nil
		},
	}
	r := productRouter(svc, "sesame")

	body := []byte(`{"name":"Flat White","category":"coffee","price":4.2}`)

	w := postJSON(r, "/api/products", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", "sesame")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "prod-new", created.ID)
}

func TestCreateProduct_NoTokenConfigured(t *testing.T) {
	svc := &mockProductService{
		createFn: func(_ context.Context, p *models.Product) (*models.Product, error) { return p, nil },
	}
	r := productRouter(svc, "")

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("X-Admin-Token", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "mutations stay closed without a configured token")
}

func TestUpdateProduct_PatchResponse(t *testing.T) {
	svc := &mockProductService{
		updateFn: func(_ context.Context, id string, upd *models.ProductUpdate) (*models.Product, error) {
			assert.Equal(t, "prod-latte", id)
			assert.NotNil(t, upd.Price)
			return &models.Product{ID: id, Name: "Latte", Price: *upd.Price}, nil
		},
	}
	r := productRouter(svc, "sesame")

	req := httptest.NewRequest(http.MethodPatch, "/api/products/prod-latte", bytes.NewReader([]byte(`{"price":4.9}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", "sesame")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 4.9, updated.Price)
}

func TestDeleteProduct_ReturnsDeleted(t *testing.T) {
	svc := &mockProductService{
		deleteFn: func(_ context.Context, id string) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Latte"}, nil
		},
	}
	r := productRouter(svc, "sesame")

	req := httptest.NewRequest(http.MethodDelete, "/api/products/prod-latte", nil)
	req.Header.Set("X-Admin-Token", "sesame")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var deleted models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, "Latte", deleted.Name)
}
