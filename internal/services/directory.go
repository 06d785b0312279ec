package services

import (
	"errors"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (s *DirectoryService) CreateBusiness(userID uint, req CreateBusinessRequest) (*models.Business, error) {
	business := models.Business{
		Name:        utils.SanitizeString(req.Name),
		Description: req.Description,
		Category:    utils.SanitizeString(req.Category),
		Address:     utils.SanitizeString(req.Address),
		Phone:       utils.SanitizeString(req.Phone),
		Website:     utils.SanitizeString(req.Website),
		UserID:      userID,
	}

	if err := s.db.Create(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (s *DirectoryService) Businesses() ([]models.Business, error) {
	var businesses []models.Business
	err := s.db.Find(&businesses).Error
	return businesses, err
}

func (s *DirectoryService) GetBusiness(id uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.Preload("Owner").First(&business, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &business, nil
}

// CreateBusinessReview posts a review against a business. The rating is
// stored as given; no range is enforced.
func (s *DirectoryService) CreateBusinessReview(userID, businessID uint, req CreateReviewRequest) (*models.Review, error) {
	var business models.Business
	if err := s.db.First(&business, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		Rating:     req.Rating,
		Comment:    req.Comment,
		UserID:     userID,
		BusinessID: &business.ID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateSellerReview posts a review against a user acting as a seller,
// addressed by username.
func (s *DirectoryService) CreateSellerReview(userID uint, sellerUsername string, req CreateReviewRequest) (*models.Review, error) {
	var seller models.User
	if err := s.db.Where("username = ?", sellerUsername).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		Rating:   req.Rating,
		Comment:  req.Comment,
		UserID:   userID,
		SellerID: &seller.ID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// BusinessReviews returns a business's reviews, newest first.
func (s *DirectoryService) BusinessReviews(businessID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Author").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// SellerReviews returns the reviews left on a seller's profile, newest first.
func (s *DirectoryService) SellerReviews(sellerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Author").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
