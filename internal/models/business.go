package models

import "time"

type Business struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"size:100;not null"`
	Address     string    `json:"address,omitempty" gorm:"size:255"`
	Phone       string    `json:"phone,omitempty" gorm:"size:20"`
	Website     string    `json:"website,omitempty" gorm:"size:255"`
	UserID      uint      `json:"user_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner   User     `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Reviews []Review `json:"reviews,omitempty"`
}

// Review attaches either to a Business (BusinessID set) or to a user acting
// as a marketplace seller (SellerID set). Neither side is enforced exclusive.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text;not null"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	BusinessID *uint     `json:"business_id,omitempty" gorm:"index"`
	SellerID   *uint     `json:"seller_id,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Author User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
