package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type EventHandler struct {
	eventService *services.EventService
	baseURL      string
}

func NewEventHandler(eventService *services.EventService, baseURL string) *EventHandler {
	return &EventHandler{eventService: eventService, baseURL: baseURL}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	event, err := h.eventService.CreateEvent(userID, req)
	if err != nil {
		sendServiceError(c, "Failed to create event", err)
		return
	}

	utils.SendCreated(c, "Event created successfully", event)
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.Events()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch events", err)
		return
	}

	utils.SendSuccess(c, "Events retrieved successfully", events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "event_id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch event", err)
		return
	}

	utils.SendSuccess(c, "Event retrieved successfully", event)
}

// GetCalendarFeed returns the raw feed array the calendar widget consumes,
// not the standard success envelope.
func (h *EventHandler) GetCalendarFeed(c *gin.Context) {
	entries, err := h.eventService.CalendarFeed(h.baseURL)
	if err != nil {
		utils.SendInternalError(c, "Failed to build calendar feed", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
