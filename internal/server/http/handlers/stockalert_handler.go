package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mireles/storefront/internal/server/http/dto"
)

// StockAlertHandler exposes derived stock alerts to admins.
type StockAlertHandler struct {
	facade StockAlertFacade
}

// NewStockAlertHandler constructs StockAlertHandler.
func NewStockAlertHandler(facade StockAlertFacade) *StockAlertHandler {
	return &StockAlertHandler{facade: facade}
}

// List handles GET /stock-alerts.
func (h *StockAlertHandler) List(c *gin.Context) {
	includeResolved := strings.EqualFold(c.Query("includeResolved"), "true")

	alerts, err := h.facade.StockAlerts(c.Request.Context(), includeResolved)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.StockAlertResponse, 0, len(alerts))
	for i := range alerts {
		response = append(response, dto.ToStockAlertResponse(&alerts[i]))
	}
	c.JSON(http.StatusOK, response)
}
