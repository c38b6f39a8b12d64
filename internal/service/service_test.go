package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/sundaynet/internal/model"
	"github.com/d60-Lab/sundaynet/pkg/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string, private bool) *model.Profile {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, db.Create(&model.User{ID: id, Username: username, Email: username + "@example.com", Password: "x"}).Error)
	p := &model.Profile{ID: id, Bio: "hi, i am " + username, Private: private}
	require.NoError(t, db.Create(p).Error)
	return p
}
