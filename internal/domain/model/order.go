package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Role distinguishes actors in transition rules.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// RoleOf maps an actor to its transition role.
func RoleOf(actor Actor) Role {
	if actor.IsAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

// NormalizeStatus lowers the raw value and maps legacy numeric codes still
// sent by older mobile clients ("1" delivered, "2" shipped, "3" pending).
// The second return value reports whether the result is a known status.
func NormalizeStatus(raw string) (OrderStatus, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	switch lowered {
	case "1":
		return OrderStatusDelivered, true
	case "2":
		return OrderStatusShipped, true
	case "3":
		return OrderStatusPending, true
	}
	status := OrderStatus(lowered)
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status, true
	}
	return status, false
}

// Final reports whether the status terminates the lifecycle.
func (s OrderStatus) Final() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// AllowedTransitions is total over (status, role): unknown combinations
// yield the empty set rather than a silent nil lookup.
func AllowedTransitions(from OrderStatus, role Role) []OrderStatus {
	switch from {
	case OrderStatusPending:
		if role == RoleAdmin {
			return []OrderStatus{OrderStatusShipped, OrderStatusCancelled}
		}
		return []OrderStatus{OrderStatusCancelled}
	case OrderStatusShipped:
		if role == RoleAdmin {
			return []OrderStatus{OrderStatusCancelled}
		}
		return []OrderStatus{OrderStatusDelivered, OrderStatusCancelled}
	case OrderStatusDelivered, OrderStatusCancelled:
		return nil
	}
	return nil
}

// CanTransition reports whether role may move an order from one status to another.
func CanTransition(from, to OrderStatus, role Role) bool {
	for _, allowed := range AllowedTransitions(from, role) {
		if allowed == to {
			return true
		}
	}
	return false
}

// OrderItem is an immutable order line captured at checkout.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// CartLine is a normalized client cart entry before product-reference validation.
type CartLine struct {
	ProductRef string
	Name       string
	Price      float64
	Image      string
	Quantity   int
}

// Order is a placed order with a delivery snapshot taken from the user profile.
type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Items            []OrderItem
	Status           OrderStatus
	TotalPrice       float64
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	DateOrdered      time.Time
}

// TotalOf computes the order total from its lines. Client-supplied totals
// are never trusted.
func TotalOf(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
