package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
)

// ProductCreateRequest creates a catalog product.
type ProductCreateRequest struct {
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	CountInStock    *int    `json:"countInStock"`
	Rating          float64 `json:"rating"`
	NumReviews      int     `json:"numReviews"`
	IsFeatured      bool    `json:"isFeatured"`
}

// Validate checks required fields and resolves the category reference.
func (r ProductCreateRequest) Validate() (uuid.UUID, bool) {
	if r.Name == "" || r.Brand == "" || r.Category == "" || r.CountInStock == nil {
		return uuid.Nil, false
	}
	categoryID, err := uuid.Parse(r.Category)
	if err != nil {
		return uuid.Nil, false
	}
	return categoryID, true
}

// ToProduct converts the request into a domain product.
func (r ProductCreateRequest) ToProduct(categoryID uuid.UUID) *model.Product {
	count := 0
	if r.CountInStock != nil {
		count = *r.CountInStock
	}
	return &model.Product{
		Name:            r.Name,
		Brand:           r.Brand,
		Price:           r.Price,
		Description:     r.Description,
		RichDescription: r.RichDescription,
		Image:           r.Image,
		CategoryID:      categoryID,
		CountInStock:    count,
		Rating:          r.Rating,
		NumReviews:      r.NumReviews,
		IsFeatured:      r.IsFeatured,
	}
}

// ProductUpdateRequest carries partial product changes; absent fields keep
// their stored values.
type ProductUpdateRequest struct {
	Name            *string  `json:"name"`
	Brand           *string  `json:"brand"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
	RichDescription *string  `json:"richDescription"`
	Image           *string  `json:"image"`
	Category        *string  `json:"category"`
	CountInStock    *int     `json:"countInStock"`
	Rating          *float64 `json:"rating"`
	NumReviews      *int     `json:"numReviews"`
	IsFeatured      *bool    `json:"isFeatured"`
}

// ApplyTo merges the request onto an existing product. It reports false when
// the category reference does not parse.
func (r ProductUpdateRequest) ApplyTo(p *model.Product) bool {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.RichDescription != nil {
		p.RichDescription = *r.RichDescription
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.Category != nil {
		categoryID, err := uuid.Parse(*r.Category)
		if err != nil {
			return false
		}
		p.CategoryID = categoryID
	}
	if r.CountInStock != nil {
		p.CountInStock = *r.CountInStock
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
	}
	if r.NumReviews != nil {
		p.NumReviews = *r.NumReviews
	}
	if r.IsFeatured != nil {
		p.IsFeatured = *r.IsFeatured
	}
	return true
}

// ProductResponse is the transport shape of a product.
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Description     string    `json:"description"`
	RichDescription string    `json:"richDescription"`
	Image           string    `json:"image"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	CountInStock    int       `json:"countInStock"`
	Rating          float64   `json:"rating"`
	NumReviews      int       `json:"numReviews"`
	IsFeatured      bool      `json:"isFeatured"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToProductResponse converts a domain product.
func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Brand:           p.Brand,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Image:           p.Image,
		Price:           p.Price,
		Category:        p.CategoryID.String(),
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		CreatedAt:       p.CreatedAt,
	}
}
