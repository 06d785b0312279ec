package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

// sendServiceError maps the service-layer failure taxonomy onto HTTP
// statuses. Not-found and forbidden are deliberately distinct.
func sendServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.SendNotFound(c, message)
	case errors.Is(err, services.ErrForbidden):
		utils.SendForbidden(c, message)
	case errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, message, err)
	default:
		utils.SendInternalError(c, message, err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid "+name)
		return 0, false
	}
	return uint(value), true
}
