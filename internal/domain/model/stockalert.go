package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies a stock alert.
type AlertType string

const (
	AlertTypeLow AlertType = "low"
	AlertTypeOut AlertType = "out"
)

// StockAlert records a stock condition derived from a product's count.
// For a given product at most one unresolved alert of each type exists.
type StockAlert struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	Type         AlertType
	Threshold    int
	CountInStock int
	Resolved     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
