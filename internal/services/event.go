package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Location    string `json:"location"`
}

// CalendarEntry is the structured feed contract consumed by the calendar
// widget: start and end are ISO-8601 timestamps.
type CalendarEntry struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	URL   string `json:"url"`
}

// CreateEvent parses the supplied ISO-8601 timestamps. An inverted range
// (end before start) is accepted as-is.
func (s *EventService) CreateEvent(userID uint, req CreateEventRequest) (*models.Event, error) {
	start, err := utils.ParseISOTime(req.StartTime)
	if err != nil {
		return nil, validationError("invalid start_time")
	}
	end, err := utils.ParseISOTime(req.EndTime)
	if err != nil {
		return nil, validationError("invalid end_time")
	}

	event := models.Event{
		Title:       utils.SanitizeString(req.Title),
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    utils.SanitizeString(req.Location),
		UserID:      userID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Organizer").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Events() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("start_time ASC").Find(&events).Error
	return events, err
}

// CalendarFeed renders every event as a feed entry with RFC 3339 timestamps
// and a detail link under the given base URL.
func (s *EventService) CalendarFeed(baseURL string) ([]CalendarEntry, error) {
	events, err := s.Events()
	if err != nil {
		return nil, err
	}

	entries := make([]CalendarEntry, 0, len(events))
	for _, event := range events {
		entries = append(entries, CalendarEntry{
			Title: event.Title,
			Start: event.StartTime.Format(time.RFC3339),
			End:   event.EndTime.Format(time.RFC3339),
			URL:   fmt.Sprintf("%s/api/v1/events/%d", baseURL, event.ID),
		})
	}
	return entries, nil
}
