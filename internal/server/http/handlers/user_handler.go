package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mireles/storefront/internal/server/http/dto"
)

// UserHandler manages profile endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.facade.User(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile handles PUT /users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	update, ok := req.ToProfileUpdate()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deliveryLocation must include numeric latitude and longitude"})
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentActor(c).UserID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// SavePushToken handles POST /users/push-token.
func (h *UserHandler) SavePushToken(c *gin.Context) {
	var req dto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "push token is required"})
		return
	}

	if err := h.facade.SavePushToken(c.Request.Context(), CurrentActor(c).UserID, req.Token, req.Type); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
