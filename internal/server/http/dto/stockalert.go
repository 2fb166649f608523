package dto

import (
	"time"

	"github.com/mireles/storefront/internal/domain/model"
)

// StockAlertResponse is the transport shape of a stock alert.
type StockAlertResponse struct {
	ID           string    `json:"id"`
	Product      string    `json:"product"`
	Type         string    `json:"type"`
	Threshold    int       `json:"threshold"`
	CountInStock int       `json:"countInStock"`
	Resolved     bool      `json:"resolved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToStockAlertResponse converts a domain alert.
func ToStockAlertResponse(a *model.StockAlert) StockAlertResponse {
	return StockAlertResponse{
		ID:           a.ID.String(),
		Product:      a.ProductID.String(),
		Type:         string(a.Type),
		Threshold:    a.Threshold,
		CountInStock: a.CountInStock,
		Resolved:     a.Resolved,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
