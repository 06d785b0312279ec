package database

import (
	"github.com/localmart/community-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs schema auto-migration for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Category{},
		&models.Tag{},
		&models.Listing{},
		&models.Business{},
		&models.Review{},
		&models.ForumCategory{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.Message{},
		&models.Event{},
		&models.Ad{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
	)
}

var (
	seedRoles      = []string{"user", "admin"}
	seedCategories = []string{"Real Estate", "For Sale", "Services", "Jobs"}
)

// Seed inserts the fixed role and listing-category rows. It is idempotent:
// existing rows are left untouched and never duplicated.
func Seed(db *gorm.DB) error {
	for _, name := range seedRoles {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	for _, name := range seedCategories {
		category := models.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	return nil
}
