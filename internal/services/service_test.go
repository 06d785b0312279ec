package services

import (
	"testing"

	"github.com/localmart/community-backend/internal/database"
	"github.com/localmart/community-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func grantRole(t *testing.T, db *gorm.DB, user *models.User, roleName string) {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("role %s not seeded: %v", roleName, err)
	}
	if err := db.Model(user).Association("Roles").Append(&role); err != nil {
		t.Fatalf("failed to grant role %s: %v", roleName, err)
	}
}

func firstCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	var category models.Category
	if err := db.First(&category).Error; err != nil {
		t.Fatalf("no seeded category: %v", err)
	}
	return &category
}
