package models

import (
	"time"
)

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;uniqueIndex;not null"`
}

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;uniqueIndex;not null"`
}

type Listing struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:120;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	CategoryID   uint      `json:"category_id" gorm:"not null;index"`
	Location     string    `json:"location,omitempty" gorm:"size:120"`
	ContactEmail string    `json:"contact_email,omitempty" gorm:"size:120"`
	ContactPhone string    `json:"contact_phone,omitempty" gorm:"size:60"`
	Price        *float64  `json:"price,omitempty"`
	Status       string    `json:"status" gorm:"size:20;not null;default:published"`
	ViewsCount   int       `json:"views_count" gorm:"default:0"`
	IsSponsored  bool      `json:"is_sponsored" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Author   User     `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Category Category `json:"category,omitempty"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:listing_tags"`
}
