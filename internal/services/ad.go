package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

// AdService manages the rotating homepage ad slot. All mutations are
// admin-gated at the route layer.
type AdService struct {
	db *gorm.DB
}

func NewAdService(db *gorm.DB) *AdService {
	return &AdService{db: db}
}

type AdRequest struct {
	ImageURL  string `json:"image_url" binding:"required"`
	LinkURL   string `json:"link_url" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

func (s *AdService) CreateAd(req AdRequest) (*models.Ad, error) {
	start, err := utils.ParseISOTime(req.StartDate)
	if err != nil {
		return nil, validationError("invalid start_date")
	}
	end, err := utils.ParseISOTime(req.EndDate)
	if err != nil {
		return nil, validationError("invalid end_date")
	}

	ad := models.Ad{
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}

	if err := s.db.Create(&ad).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (s *AdService) Ads() ([]models.Ad, error) {
	var ads []models.Ad
	err := s.db.Find(&ads).Error
	return ads, err
}

func (s *AdService) GetAd(id uint) (*models.Ad, error) {
	var ad models.Ad
	if err := s.db.First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (s *AdService) UpdateAd(id uint, req AdRequest) (*models.Ad, error) {
	ad, err := s.GetAd(id)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseISOTime(req.StartDate)
	if err != nil {
		return nil, validationError("invalid start_date")
	}
	end, err := utils.ParseISOTime(req.EndDate)
	if err != nil {
		return nil, validationError("invalid end_date")
	}

	ad.ImageURL = req.ImageURL
	ad.LinkURL = req.LinkURL
	ad.StartDate = start
	ad.EndDate = end
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}

	if err := s.db.Save(ad).Error; err != nil {
		return nil, err
	}
	return ad, nil
}

// DeleteAd is a hard delete.
func (s *AdService) DeleteAd(id uint) error {
	result := s.db.Delete(&models.Ad{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RandomActive picks one ad, uniformly at random, among those that are
// active and whose window contains now. This is the rotation contract:
// never "first match". Returns nil when nothing is eligible.
func (s *AdService) RandomActive(now time.Time) (*models.Ad, error) {
	var eligible []models.Ad
	err := s.db.
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Find(&eligible).Error
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	return &eligible[rand.Intn(len(eligible))], nil
}
