package main

import (
	"log"
	"sort"

	"github.com/yuxuan3d/odin-messaging-app/internal/config"
	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"github.com/yuxuan3d/odin-messaging-app/internal/seeds"
	"github.com/yuxuan3d/odin-messaging-app/pkg/utils"
)

// Seeds the demo accounts and conversations, then prints a dev bearer token
// per account so the API can be exercised without the auth service running.
func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	users, err := seeds.SeedUsers()
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	if err := seeds.SeedMessages(users); err != nil {
		log.Fatalf("Failed to seed messages: %v", err)
	}

	usernames := make([]string, 0, len(users))
	for name := range users {
		usernames = append(usernames, name)
	}
	sort.Strings(usernames)

	log.Println("Dev tokens:")
	for _, name := range usernames {
		token, err := utils.GenerateToken(users[name].ID)
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", name, err)
		}
		log.Printf("   %s (ID %d): %s", name, users[name].ID, token)
	}
}
