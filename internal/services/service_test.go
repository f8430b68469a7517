package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lostfound-app/backend/internal/config"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		MaxImageBytes: 1024,
	}
}

func registerUser(t *testing.T, svc *AuthService, email string) *models.User {
	t.Helper()

	user, token, err := svc.Register(&dto.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Phone:    "5551234567",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func validItemRequest() *dto.ItemRequest {
	return &dto.ItemRequest{
		Title:        "Black Wallet",
		Description:  "Leather wallet with cards inside",
		Category:     "Accessories",
		Status:       "lost",
		Location:     "Central Station",
		Date:         "2026-08-20",
		ContactName:  "Jane Doe",
		ContactPhone: "5551234567",
		ContactEmail: "jane@example.com",
	}
}
