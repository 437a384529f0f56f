package services

import (
	"time"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB points the global DB at a clean in-memory SQLite store.
// Shared cache keeps GORM's pooled connections on the same database; tables
// are dropped so every test starts from message id 1.
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.Migrator().DropTable(&models.Message{}, &models.User{})
	database.DB.AutoMigrate(
		&models.User{},
		&models.Message{},
	)
}

func createUser(username string) models.User {
	u := models.User{Username: username}
	database.DB.Create(&u)
	return u
}

func createMessage(senderID, receiverID uint, content string, at time.Time) models.Message {
	m := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  at,
	}
	database.DB.Create(&m)
	return m
}
