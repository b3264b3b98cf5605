package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-todo-api/internal/core/database"
	"go-todo-api/internal/domain"
	"go-todo-api/pkg/utils"
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

func seedUser(t *testing.T, db *gorm.DB, email string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           utils.NewID(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		Username:     "ada",
		PasswordHash: "x",
		Role:         domain.RoleUser,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) domain.Category {
	t.Helper()
	c := domain.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedToDo(t *testing.T, db *gorm.DB, td domain.ToDo) domain.ToDo {
	t.Helper()
	if td.ID == "" {
		td.ID = utils.NewID()
	}
	require.NoError(t, db.Create(&td).Error)
	return td
}

func at(day string, hour int) time.Time {
	d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}
