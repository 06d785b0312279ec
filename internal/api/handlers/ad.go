package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
	"github.com/localmart/community-backend/pkg/logger"
)

type AdHandler struct {
	adService *services.AdService
	s3Service *services.S3Service
}

func NewAdHandler(adService *services.AdService, s3Service *services.S3Service) *AdHandler {
	return &AdHandler{adService: adService, s3Service: s3Service}
}

func (h *AdHandler) GetAds(c *gin.Context) {
	ads, err := h.adService.Ads()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch ads", err)
		return
	}

	utils.SendSuccess(c, "Ads retrieved successfully", ads)
}

func (h *AdHandler) CreateAd(c *gin.Context) {
	var req services.AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	ad, err := h.adService.CreateAd(req)
	if err != nil {
		sendServiceError(c, "Failed to create ad", err)
		return
	}

	utils.SendCreated(c, "Ad created successfully", ad)
}

func (h *AdHandler) UpdateAd(c *gin.Context) {
	id, ok := parseIDParam(c, "ad_id")
	if !ok {
		return
	}

	var req services.AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	previous, err := h.adService.GetAd(id)
	if err != nil {
		sendServiceError(c, "Failed to update ad", err)
		return
	}

	ad, err := h.adService.UpdateAd(id, req)
	if err != nil {
		sendServiceError(c, "Failed to update ad", err)
		return
	}

	if previous.ImageURL != ad.ImageURL {
		h.deleteCreativeForURL(previous.ImageURL)
	}

	utils.SendSuccess(c, "Ad updated successfully", ad)
}

func (h *AdHandler) DeleteAd(c *gin.Context) {
	id, ok := parseIDParam(c, "ad_id")
	if !ok {
		return
	}

	ad, err := h.adService.GetAd(id)
	if err != nil {
		sendServiceError(c, "Failed to delete ad", err)
		return
	}

	if err := h.adService.DeleteAd(id); err != nil {
		sendServiceError(c, "Failed to delete ad", err)
		return
	}

	h.deleteCreativeForURL(ad.ImageURL)

	utils.SendSuccess(c, "Ad deleted successfully", nil)
}

// deleteCreativeForURL removes an orphaned creative from S3. The ad row is
// the source of truth, so a failed cleanup is logged, not surfaced.
func (h *AdHandler) deleteCreativeForURL(imageURL string) {
	key := h.s3Service.CreativeKeyFromURL(imageURL)
	if key == "" {
		return
	}
	if err := h.s3Service.DeleteCreative(key); err != nil {
		logger.WithFields(map[string]interface{}{"key": key, "error": err.Error()}).
			Warn("Failed to delete orphaned ad creative")
	}
}

// GetRandomAd serves the public homepage ad slot.
func (h *AdHandler) GetRandomAd(c *gin.Context) {
	ad, err := h.adService.RandomActive(time.Now())
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch ad", err)
		return
	}

	utils.SendSuccess(c, "Ad retrieved successfully", ad)
}

// UploadCreative stores an ad image in S3 and returns the URL to use as the
// ad's image_url.
func (h *AdHandler) UploadCreative(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendInternalError(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	result, err := h.s3Service.UploadAdCreative(file, fileHeader)
	if err != nil {
		sendServiceError(c, "Failed to upload creative", err)
		return
	}

	utils.SendCreated(c, "Creative uploaded successfully", result)
}
