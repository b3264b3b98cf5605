package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-todo-api/internal/core/auth"
	"go-todo-api/internal/core/database"
	"go-todo-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.User{}, &domain.ToDo{}))
	return db
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte("test-secret"),
		Issuer: "go-todo-api-test",
		TTL:    time.Hour,
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }

func datetime(day string, hour int) time.Time {
	d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}
