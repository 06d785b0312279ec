package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID := c.GetUint("user_id")

	conversations, err := h.messageService.Conversations(userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch conversations", err)
		return
	}

	utils.SendSuccess(c, "Conversations retrieved successfully", conversations)
}

func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID := c.GetUint("user_id")

	listingID, ok := parseIDParam(c, "listing_id")
	if !ok {
		return
	}
	recipientID, ok := parseIDParam(c, "recipient_id")
	if !ok {
		return
	}

	messages, err := h.messageService.Conversation(userID, listingID, recipientID)
	if err != nil {
		sendServiceError(c, "Failed to fetch conversation", err)
		return
	}

	utils.SendSuccess(c, "Conversation retrieved successfully", messages)
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := c.GetUint("user_id")

	listingID, ok := parseIDParam(c, "listing_id")
	if !ok {
		return
	}
	recipientID, ok := parseIDParam(c, "recipient_id")
	if !ok {
		return
	}

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	message, err := h.messageService.Send(userID, listingID, recipientID, req)
	if err != nil {
		sendServiceError(c, "Failed to send message", err)
		return
	}

	utils.SendCreated(c, "Message sent successfully", message)
}
