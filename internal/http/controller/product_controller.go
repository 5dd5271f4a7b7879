package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/repository"
	"github.com/iyhunko/realtime-catalog/internal/service"
)

const (
	productNotFoundMsg = "Product not found"
	requiredFieldsMsg  = "All fields except thumbnails are required"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProducts handles the HTTP GET request for listing products. Without a
// limit it returns the whole collection in insertion order; with one it
// returns at most that many products from the head. An unparseable limit
// yields an empty listing rather than an error.
func (pc *ProductController) ListProducts(c *gin.Context) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		c.JSON(http.StatusOK, pc.productService.ListProducts(c.Request.Context()))
		return
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		limit = 0
	}
	c.JSON(http.StatusOK, pc.productService.ListProductsLimit(c.Request.Context(), limit))
}

// GetProduct handles the HTTP GET request for fetching a single product by id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": productNotFoundMsg})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input model.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredFieldsMsg})
		return
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": requiredFieldsMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles the HTTP PUT request for partially updating a
// product. Only fields present in the body overwrite stored values; the id
// comes from the path alone.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var patch model.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("pid"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": productNotFoundMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles the HTTP DELETE request for removing a product by id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("pid")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": productNotFoundMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}
