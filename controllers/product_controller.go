package controllers

import (
	"errors"
	"net/http"

	"ordering-service/models"
	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	Products services.ProductService
	Logger   *zap.Logger
}

// ListProducts returns the whole menu catalog.
func (pc *ProductController) ListProducts(c *gin.Context) {
	catalog, err := pc.Products.GetCatalog(c.Request.Context())
	if err != nil {
		pc.Logger.Error("Failed to load products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.Products.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.Logger.Error("Failed to load product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := pc.Products.CreateProduct(c.Request.Context(), &product)
	if errors.Is(err, services.ErrInvalidProduct) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		pc.Logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := pc.Products.UpdateProduct(c.Request.Context(), c.Param("id"), &upd)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.Logger.Error("Failed to update product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	deleted, err := pc.Products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.Logger.Error("Failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}
