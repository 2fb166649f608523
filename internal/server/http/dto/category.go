package dto

import "github.com/mireles/storefront/internal/domain/model"

// CategoryRequest creates or updates a category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryResponse is the transport shape of a category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ToCategoryResponse converts a domain category.
func ToCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
}
