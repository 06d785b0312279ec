package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type ListingHandler struct {
	listingService *services.ListingService
	adService      *services.AdService
}

func NewListingHandler(listingService *services.ListingService, adService *services.AdService) *ListingHandler {
	return &ListingHandler{listingService: listingService, adService: adService}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	listing, err := h.listingService.CreateListing(userID, req)
	if err != nil {
		sendServiceError(c, "Failed to create listing", err)
		return
	}

	utils.SendCreated(c, "Listing created successfully", listing)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c, "listing_id")
	if !ok {
		return
	}

	listing, err := h.listingService.GetListing(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch listing", err)
		return
	}

	utils.SendSuccess(c, "Listing retrieved successfully", listing)
}

func (h *ListingHandler) GetAllListings(c *gin.Context) {
	listings, err := h.listingService.AllListings()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch listings", err)
		return
	}

	utils.SendSuccess(c, "Listings retrieved successfully", listings)
}

func (h *ListingHandler) GetMyListings(c *gin.Context) {
	userID := c.GetUint("user_id")

	listings, err := h.listingService.ListingsByUser(userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch listings", err)
		return
	}

	utils.SendSuccess(c, "Listings retrieved successfully", listings)
}

func (h *ListingHandler) GetCategories(c *gin.Context) {
	categories, err := h.listingService.Categories()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch categories", err)
		return
	}

	utils.SendSuccess(c, "Categories retrieved successfully", categories)
}

// GetHomepage combines the recent-listings strip with the rotating ad slot.
func (h *ListingHandler) GetHomepage(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 50 {
		limit = 5
	}

	listings, err := h.listingService.RecentListings(limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch listings", err)
		return
	}

	ad, err := h.adService.RandomActive(time.Now())
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch ad", err)
		return
	}

	utils.SendSuccess(c, "Homepage retrieved successfully", gin.H{
		"listings": listings,
		"ad":       ad,
	})
}
