package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
	authService      *services.AuthService
}

func NewDirectoryHandler(directoryService *services.DirectoryService, authService *services.AuthService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService, authService: authService}
}

func (h *DirectoryHandler) CreateBusiness(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	business, err := h.directoryService.CreateBusiness(userID, req)
	if err != nil {
		sendServiceError(c, "Failed to create business", err)
		return
	}

	utils.SendCreated(c, "Business listed successfully", business)
}

func (h *DirectoryHandler) GetBusinesses(c *gin.Context) {
	businesses, err := h.directoryService.Businesses()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch businesses", err)
		return
	}

	utils.SendSuccess(c, "Businesses retrieved successfully", businesses)
}

func (h *DirectoryHandler) GetBusiness(c *gin.Context) {
	id, ok := parseIDParam(c, "business_id")
	if !ok {
		return
	}

	business, err := h.directoryService.GetBusiness(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch business", err)
		return
	}

	reviews, err := h.directoryService.BusinessReviews(id)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, "Business retrieved successfully", gin.H{
		"business": business,
		"reviews":  reviews,
	})
}

func (h *DirectoryHandler) CreateBusinessReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, ok := parseIDParam(c, "business_id")
	if !ok {
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.directoryService.CreateBusinessReview(userID, id, req)
	if err != nil {
		sendServiceError(c, "Failed to post review", err)
		return
	}

	utils.SendCreated(c, "Review posted successfully", review)
}

// GetSellerProfile returns a user's public profile together with the
// reviews left on them as a marketplace seller.
func (h *DirectoryHandler) GetSellerProfile(c *gin.Context) {
	username := c.Param("username")

	user, err := h.authService.GetUserByUsername(username)
	if err != nil {
		sendServiceError(c, "Failed to fetch user", err)
		return
	}

	reviews, err := h.directoryService.SellerReviews(user.ID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, "Profile retrieved successfully", gin.H{
		"user":    user,
		"reviews": reviews,
	})
}

func (h *DirectoryHandler) CreateSellerReview(c *gin.Context) {
	userID := c.GetUint("user_id")
	username := c.Param("username")

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.directoryService.CreateSellerReview(userID, username, req)
	if err != nil {
		sendServiceError(c, "Failed to post review", err)
		return
	}

	utils.SendCreated(c, "Review posted successfully", review)
}
