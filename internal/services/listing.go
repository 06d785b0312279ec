package services

import (
	"errors"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

type CreateListingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	CategoryID   uint     `json:"category_id" binding:"required"`
	Location     string   `json:"location"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
	Price        *float64 `json:"price"`
	Tags         []string `json:"tags"`
}

// CreateListing attaches the new listing to the authenticated user and to an
// existing category. An unresolved category is a validation failure, never
// auto-created. The row insert, tag attachment and the owner's listing-count
// bump commit as one transaction.
func (s *ListingService) CreateListing(userID uint, req CreateListingRequest) (*models.Listing, error) {
	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationError("category does not exist")
		}
		return nil, err
	}

	listing := models.Listing{
		Title:        utils.SanitizeString(req.Title),
		Description:  req.Description,
		UserID:       userID,
		CategoryID:   category.ID,
		Location:     utils.SanitizeString(req.Location),
		ContactEmail: utils.SanitizeString(req.ContactEmail),
		ContactPhone: utils.SanitizeString(req.ContactPhone),
		Price:        req.Price,
		Status:       "published",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		for _, name := range req.Tags {
			name = utils.SanitizeString(name)
			if name == "" {
				continue
			}
			tag := models.Tag{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			if err := tx.Model(&listing).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("listing_count", gorm.Expr("listing_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Category").Preload("Tags").First(&listing, listing.ID)
	return &listing, nil
}

// GetListing returns a single listing and bumps its view counter.
func (s *ListingService) GetListing(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Preload("Author").Preload("Category").Preload("Tags").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.db.Model(&listing).UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	listing.ViewsCount++
	return &listing, nil
}

// RecentListings returns the newest listings first, for the homepage.
func (s *ListingService) RecentListings(limit int) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&listings).Error
	return listings, err
}

func (s *ListingService) AllListings() ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.Preload("Category").Preload("Tags").
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// ListingsByUser returns one owner's listings, newest first.
func (s *ListingService) ListingsByUser(userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.Preload("Category").Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (s *ListingService) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
