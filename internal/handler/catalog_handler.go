package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/utils"
)

// CatalogHandler handles storefront catalog endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetProducts returns the newest active products.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	limit := 12
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 48 {
			limit = n
		}
	}

	products := h.catalogService.ListProducts(limit)
	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
	}, 1, limit, len(products))
}

// GetProductByHandle returns one product by its URL handle.
func (h *CatalogHandler) GetProductByHandle(c *gin.Context) {
	handle := c.Param("handle")

	product, err := h.catalogService.GetProductByHandle(handle)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidHandle) {
			utils.Error(c, 400, "INVALID_HANDLE", "Product handle is invalid")
			return
		}
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", gin.H{
		"product": product,
	})
}
