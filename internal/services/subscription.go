package services

import (
	"time"

	"github.com/localmart/community-backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionService flips per-user plan state. There is no payment
// verification here: Purchase is a bare state transition and must be treated
// as a trust boundary if ever connected to real payment processing.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

const premiumDuration = 30 * 24 * time.Hour

// Purchase moves the user to premium for 30 days. Any plan type other than
// "premium" is rejected with no state change.
func (s *SubscriptionService) Purchase(userID uint, planType string) (*models.User, error) {
	if planType != models.SubscriptionPremium {
		return nil, validationError("invalid plan type")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	endDate := time.Now().Add(premiumDuration)
	user.SubscriptionStatus = models.SubscriptionPremium
	user.SubscriptionEndDate = &endDate

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsPremium reports the stored plan state alone. The end date is not
// consulted: nothing in the system transitions premium back to free.
func (s *SubscriptionService) IsPremium(user *models.User) bool {
	return user.SubscriptionStatus == models.SubscriptionPremium
}

// IsPremiumActive additionally requires the end date to be in the future.
// Kept separate from IsPremium until expiry semantics are settled.
func (s *SubscriptionService) IsPremiumActive(user *models.User, now time.Time) bool {
	return user.SubscriptionStatus == models.SubscriptionPremium &&
		user.SubscriptionEndDate != nil &&
		now.Before(*user.SubscriptionEndDate)
}
