// Package testutil opens the PostgreSQL database used by repository tests.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mercadolivro/bookstore-backend/entity"
)

// OpenDB connects to TEST_DATABASE_URL, migrates the schema and truncates all
// tables. The test is skipped when the variable is unset or the server is unreachable.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Skipf("skipping repository test: could not connect to postgres: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("skipping repository test: could not ping postgres: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(entity.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE purchase_books, purchases, books, customers CASCADE").Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}
