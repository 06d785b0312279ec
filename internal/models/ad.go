package models

import "time"

// Ad is an admin-managed promotional placement. It has no owning user.
type Ad struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ImageURL  string    `json:"image_url" gorm:"size:255;not null"`
	LinkURL   string    `json:"link_url" gorm:"size:255;not null"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
	// No gorm default tag here: a default would make inserts skip the zero
	// value, silently persisting is_active=false ads as active.
	IsActive bool `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
