package services

import (
	"errors"
	"testing"
	"time"

	"github.com/localmart/community-backend/internal/models"
)

func TestCreateBusinessSetsOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	user := createTestUser(t, db, "owner")

	business, err := svc.CreateBusiness(user.ID, CreateBusinessRequest{
		Name:        "Corner Bakery",
		Description: "Fresh bread daily",
		Category:    "Food",
	})
	if err != nil {
		t.Fatalf("create business failed: %v", err)
	}
	if business.UserID != user.ID {
		t.Errorf("owner = %d, want %d", business.UserID, user.ID)
	}
}

func TestBusinessReviewsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	owner := createTestUser(t, db, "owner")
	reviewer := createTestUser(t, db, "reviewer")

	business, err := svc.CreateBusiness(owner.ID, CreateBusinessRequest{
		Name: "Corner Bakery", Description: "Fresh bread", Category: "Food",
	})
	if err != nil {
		t.Fatalf("create business failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		review := models.Review{
			Rating:     i + 1,
			Comment:    "review",
			UserID:     reviewer.ID,
			BusinessID: &business.ID,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&review).Error; err != nil {
			t.Fatalf("insert review failed: %v", err)
		}
	}

	reviews, err := svc.BusinessReviews(business.ID)
	if err != nil {
		t.Fatalf("BusinessReviews failed: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("got %d reviews, want 3", len(reviews))
	}
	for i := 1; i < len(reviews); i++ {
		if reviews[i].CreatedAt.After(reviews[i-1].CreatedAt) {
			t.Errorf("reviews not ordered newest first at index %d", i)
		}
	}
}

func TestCreateBusinessReviewUnknownBusiness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	reviewer := createTestUser(t, db, "reviewer")

	_, err := svc.CreateBusinessReview(reviewer.ID, 9999, CreateReviewRequest{Rating: 5, Comment: "great"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSellerReviewTargetsUserByUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	seller := createTestUser(t, db, "seller")
	reviewer := createTestUser(t, db, "reviewer")

	review, err := svc.CreateSellerReview(reviewer.ID, "seller", CreateReviewRequest{
		Rating:  4,
		Comment: "smooth transaction",
	})
	if err != nil {
		t.Fatalf("create seller review failed: %v", err)
	}
	if review.SellerID == nil || *review.SellerID != seller.ID {
		t.Errorf("seller_id = %v, want %d", review.SellerID, seller.ID)
	}
	if review.BusinessID != nil {
		t.Error("seller review must not carry a business_id")
	}
	if review.UserID != reviewer.ID {
		t.Errorf("author = %d, want %d", review.UserID, reviewer.ID)
	}

	_, err = svc.CreateSellerReview(reviewer.ID, "nobody", CreateReviewRequest{Rating: 1, Comment: "?"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown seller: got %v, want ErrNotFound", err)
	}
}

func TestReviewRatingNotRangeBound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	owner := createTestUser(t, db, "owner")
	reviewer := createTestUser(t, db, "reviewer")

	business, err := svc.CreateBusiness(owner.ID, CreateBusinessRequest{
		Name: "Shop", Description: "d", Category: "Retail",
	})
	if err != nil {
		t.Fatalf("create business failed: %v", err)
	}

	// The data model does not bound ratings; callers add their own range
	// validation if they need one.
	review, err := svc.CreateBusinessReview(reviewer.ID, business.ID, CreateReviewRequest{
		Rating:  11,
		Comment: "off the scale",
	})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if review.Rating != 11 {
		t.Errorf("rating = %d, want 11 stored as given", review.Rating)
	}
}
