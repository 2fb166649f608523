package dto

import (
	"time"

	"github.com/mireles/storefront/internal/domain/model"
)

// UserResponse is the public profile shape; credentials and push tokens
// never leave the server.
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Image            string    `json:"image,omitempty"`
	IsAdmin          bool      `json:"isAdmin"`
	DeliveryAddress1 string    `json:"deliveryAddress1"`
	DeliveryAddress2 string    `json:"deliveryAddress2"`
	DeliveryCity     string    `json:"deliveryCity"`
	DeliveryZip      string    `json:"deliveryZip"`
	DeliveryCountry  string    `json:"deliveryCountry"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user into its transport shape.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:               u.ID.String(),
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Image:            u.Image,
		IsAdmin:          u.IsAdmin,
		DeliveryAddress1: u.DeliveryAddress1,
		DeliveryAddress2: u.DeliveryAddress2,
		DeliveryCity:     u.DeliveryCity,
		DeliveryZip:      u.DeliveryZip,
		DeliveryCountry:  u.DeliveryCountry,
		CreatedAt:        u.CreatedAt,
	}
}

// DeliveryLocation is an optional coordinate pair on profile updates.
type DeliveryLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ProfileUpdateRequest carries partial profile changes; absent fields stay
// untouched.
type ProfileUpdateRequest struct {
	Name             *string           `json:"name"`
	Phone            *string           `json:"phone"`
	DeliveryAddress1 *string           `json:"deliveryAddress1"`
	DeliveryAddress2 *string           `json:"deliveryAddress2"`
	DeliveryCity     *string           `json:"deliveryCity"`
	DeliveryZip      *string           `json:"deliveryZip"`
	DeliveryCountry  *string           `json:"deliveryCountry"`
	DeliveryLocation *DeliveryLocation `json:"deliveryLocation"`
}

// ToProfileUpdate converts the request into the domain update. The second
// return value is false when a delivery location is present but incomplete.
func (r ProfileUpdateRequest) ToProfileUpdate() (model.ProfileUpdate, bool) {
	update := model.ProfileUpdate{
		Name:             r.Name,
		Phone:            r.Phone,
		DeliveryAddress1: r.DeliveryAddress1,
		DeliveryAddress2: r.DeliveryAddress2,
		DeliveryCity:     r.DeliveryCity,
		DeliveryZip:      r.DeliveryZip,
		DeliveryCountry:  r.DeliveryCountry,
	}
	if r.DeliveryLocation != nil {
		if r.DeliveryLocation.Latitude == nil || r.DeliveryLocation.Longitude == nil {
			return model.ProfileUpdate{}, false
		}
		update.DeliveryLat = r.DeliveryLocation.Latitude
		update.DeliveryLng = r.DeliveryLocation.Longitude
	}
	return update, true
}

// PushTokenRequest registers a device push token.
type PushTokenRequest struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}
