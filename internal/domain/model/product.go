package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. CountInStock drives stock-alert evaluation.
type Product struct {
	ID              uuid.UUID
	Name            string
	Brand           string
	Description     string
	RichDescription string
	Image           string
	Price           float64
	CategoryID      uuid.UUID
	CountInStock    int
	Rating          float64
	NumReviews      int
	IsFeatured      bool
	CreatedAt       time.Time
}
