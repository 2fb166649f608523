package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the store.
type User struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	Phone            string
	Image            string
	IsAdmin          bool
	DeliveryAddress1 string
	DeliveryAddress2 string
	DeliveryCity     string
	DeliveryZip      string
	DeliveryCountry  string
	DeliveryLat      *float64
	DeliveryLng      *float64
	PushToken        string
	PushTokenType    string
	CreatedAt        time.Time
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// HasCompleteDeliveryProfile reports whether the fields required to place
// an order are all present after trimming.
func (u *User) HasCompleteDeliveryProfile() bool {
	required := []string{u.Phone, u.DeliveryAddress1, u.DeliveryCity, u.DeliveryZip, u.DeliveryCountry}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ProfileUpdate carries partial profile changes; nil fields stay untouched.
type ProfileUpdate struct {
	Name             *string
	Phone            *string
	DeliveryAddress1 *string
	DeliveryAddress2 *string
	DeliveryCity     *string
	DeliveryZip      *string
	DeliveryCountry  *string
	DeliveryLat      *float64
	DeliveryLng      *float64
}

// PushRecipient is a deliverable push target.
type PushRecipient struct {
	Token string
	Type  string
}

// Recipient returns the user's push target, or false when none is registered.
func (u *User) Recipient() (PushRecipient, bool) {
	if u.PushToken == "" {
		return PushRecipient{}, false
	}
	return PushRecipient{Token: u.PushToken, Type: u.PushTokenType}, true
}
