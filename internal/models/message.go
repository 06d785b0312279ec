package models

import "time"

// Message belongs to a conversation keyed by (listing, unordered pair of
// participants); there is no standalone thread entity.
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"not null;index"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index"`
	ListingID   uint      `json:"listing_id" gorm:"not null;index"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	// Relations
	Sender    User    `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipient User    `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	Listing   Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}
