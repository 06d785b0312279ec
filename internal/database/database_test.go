package database

import (
	"testing"

	"github.com/localmart/community-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
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

	if err := Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := Seed(db); err != nil {
			t.Fatalf("seed run %d failed: %v", i+1, err)
		}
	}

	for _, name := range []string{"user", "admin"} {
		var count int64
		db.Model(&models.Role{}).Where("name = ?", name).Count(&count)
		if count != 1 {
			t.Errorf("role %q: %d rows, want exactly 1", name, count)
		}
	}

	for _, name := range []string{"Real Estate", "For Sale", "Services", "Jobs"} {
		var count int64
		db.Model(&models.Category{}).Where("name = ?", name).Count(&count)
		if count != 1 {
			t.Errorf("category %q: %d rows, want exactly 1", name, count)
		}
	}
}

func TestSeedDoesNotOverwriteExistingRows(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var before models.Role
	db.Where("name = ?", "admin").First(&before)

	if err := Seed(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var after models.Role
	db.Where("name = ?", "admin").First(&after)
	if before.ID != after.ID {
		t.Errorf("admin role id changed from %d to %d across seed runs", before.ID, after.ID)
	}
}
