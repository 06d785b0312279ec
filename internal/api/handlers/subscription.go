package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	userID := c.GetUint("user_id")
	planType := c.Param("plan_type")

	user, err := h.subscriptionService.Purchase(userID, planType)
	if err != nil {
		sendServiceError(c, "Failed to purchase subscription", err)
		return
	}

	utils.SendSuccess(c, "Subscribed to the premium plan successfully", user)
}
