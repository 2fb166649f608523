package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mireles/storefront/internal/domain/model"
)

// OrderItemRequest is one client cart line. Cart entries arrive from mobile
// clients in inconsistent shapes: the product reference may be carried as
// "product", "id" or "_id", and numeric fields may be numbers or strings.
// Normalization happens here so the core never sniffs shapes.
type OrderItemRequest struct {
	Product  any    `json:"product"`
	ID       any    `json:"id"`
	LegacyID any    `json:"_id"`
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Image    string `json:"image"`
	Quantity any    `json:"quantity"`
}

// ToCartLine resolves the alternate shapes into one canonical cart line.
// Price defaults to 0 and quantity to 1 on missing or non-numeric input.
func (r OrderItemRequest) ToCartLine() model.CartLine {
	return model.CartLine{
		ProductRef: firstReference(r.Product, r.ID, r.LegacyID),
		Name:       r.Name,
		Price:      coerceFloat(r.Price, 0),
		Image:      r.Image,
		Quantity:   coerceQuantity(r.Quantity),
	}
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	OrderItems []OrderItemRequest `json:"orderItems"`
}

// CartLines normalizes all request lines.
func (r CreateOrderRequest) CartLines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(r.OrderItems))
	for _, item := range r.OrderItems {
		lines = append(lines, item.ToCartLine())
	}
	return lines
}

// OrderStatusRequest updates an order's status. Older clients send the
// legacy numeric codes as JSON numbers, so the field is coerced.
type OrderStatusRequest struct {
	Status any `json:"status"`
}

// StatusValue returns the requested status as a string.
func (r OrderStatusRequest) StatusValue() string {
	return coerceString(r.Status)
}

// OrderItemResponse is the transport shape of an order line.
type OrderItemResponse struct {
	ID       string  `json:"id"`
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// OrderResponse is the transport shape of an order.
type OrderResponse struct {
	ID               string              `json:"id"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
	Status           string              `json:"status"`
	TotalPrice       float64             `json:"totalPrice"`
	ShippingAddress1 string              `json:"shippingAddress1"`
	ShippingAddress2 string              `json:"shippingAddress2"`
	City             string              `json:"city"`
	Zip              string              `json:"zip"`
	Country          string              `json:"country"`
	Phone            string              `json:"phone"`
	User             string              `json:"user"`
	DateOrdered      time.Time           `json:"dateOrdered"`
}

// ToOrderResponse converts a domain order.
func ToOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID.String(),
			Product:  item.ProductID.String(),
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: item.Quantity,
		})
	}
	return OrderResponse{
		ID:               o.ID.String(),
		OrderItems:       items,
		Status:           string(o.Status),
		TotalPrice:       o.TotalPrice,
		ShippingAddress1: o.ShippingAddress1,
		ShippingAddress2: o.ShippingAddress2,
		City:             o.City,
		Zip:              o.Zip,
		Country:          o.Country,
		Phone:            o.Phone,
		User:             o.UserID.String(),
		DateOrdered:      o.DateOrdered,
	}
}

// firstReference returns the first candidate that coerces to a non-empty
// string. Failing candidates fall through; an all-empty result is caught by
// reference validation downstream.
func firstReference(candidates ...any) string {
	for _, c := range candidates {
		if s := coerceString(c); s != "" {
			return s
		}
	}
	return ""
}

func coerceString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprint(value)
	}
}

func coerceFloat(v any, def float64) float64 {
	switch value := v.(type) {
	case nil:
		return def
	case float64:
		return value
	case int:
		return float64(value)
	case json.Number:
		if f, err := value.Float64(); err == nil {
			return f
		}
		return def
	case string:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

func coerceQuantity(v any) int {
	q := int(coerceFloat(v, 1))
	if q < 1 {
		return 1
	}
	return q
}
