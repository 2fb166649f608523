package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/server/http/dto"
)

// CategoryHandler manages the category catalog endpoints.
type CategoryHandler struct {
	facade CategoryFacade
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CategoryFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, dto.ToCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.Color, req.Icon)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), id, req.Name, req.Color, req.Icon)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
