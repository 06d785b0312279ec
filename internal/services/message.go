package services

import (
	"errors"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

// MessageService implements listing-scoped conversations. A conversation is
// the set of messages sharing a listing and an unordered participant pair;
// there is no thread row.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// ConversationSummary is one entry in a user's conversation list: a listing
// plus the other participant.
type ConversationSummary struct {
	ListingID uint   `json:"listing_id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
}

// Conversations returns the distinct (listing, counterparty) pairs across all
// messages the user sent or received.
func (s *MessageService) Conversations(userID uint) ([]ConversationSummary, error) {
	var summaries []ConversationSummary
	err := s.db.Table("messages").
		Select("DISTINCT messages.listing_id, users.id AS user_id, users.username").
		Joins("JOIN users ON users.id = messages.sender_id OR users.id = messages.recipient_id").
		Where("messages.sender_id = ? OR messages.recipient_id = ?", userID, userID).
		Where("users.id <> ?", userID).
		Scan(&summaries).Error
	return summaries, err
}

// Conversation returns every message between the user and the counterparty
// about one listing, in both directions, oldest first. Both participants see
// the identical sequence.
func (s *MessageService) Conversation(userID, listingID, recipientID uint) ([]models.Message, error) {
	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var recipient models.User
	if err := s.db.First(&recipient, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var messages []models.Message
	err := s.db.Preload("Sender").Preload("Recipient").
		Where("listing_id = ?", listingID).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, recipientID, recipientID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// Send records a message from the authenticated user. The listing is
// informational context, not an access boundary: the recipient is not
// required to own it.
func (s *MessageService) Send(userID, listingID, recipientID uint, req SendMessageRequest) (*models.Message, error) {
	if utils.SanitizeString(req.Body) == "" {
		return nil, validationError("body is required")
	}

	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var recipient models.User
	if err := s.db.First(&recipient, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := models.Message{
		SenderID:    userID,
		RecipientID: recipientID,
		ListingID:   listingID,
		Body:        req.Body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
