package models

import "time"

type ForumCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description,omitempty" gorm:"size:255"`

	Posts []ForumPost `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

type ForumPost struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`

	// Relations
	Author   User           `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Comments []ForumComment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

type ForumComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Author User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
