package seeds

import (
	"log"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Username string
	Password string
	Bio      string
}

var seedUsers = []seedUser{
	{Username: "aaa", Password: "123", Bio: "Loves cryptography."},
	{Username: "Bob", Password: "passwordBob", Bio: "Enjoys secure messaging."},
	{Username: "Charlie", Password: "passwordCharlie"},
	{Username: "Dave", Password: "passwordDave"},
}

// SeedUsers upserts the demo accounts and returns them keyed by username.
// The bcrypt hashes exist for the auth service's login flow; this backend
// never reads them.
func SeedUsers() (map[string]models.User, error) {
	log.Println("Seeding users...")

	users := make(map[string]models.User, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		var user models.User
		err = database.DB.Where("username = ?", su.Username).First(&user).Error
		if err == nil {
			user.Password = string(hash)
			user.Bio = su.Bio
			if err := database.DB.Save(&user).Error; err != nil {
				return nil, err
			}
		} else {
			user = models.User{
				Username: su.Username,
				Password: string(hash),
				Bio:      su.Bio,
			}
			if err := database.DB.Create(&user).Error; err != nil {
				return nil, err
			}
		}

		log.Printf("   Upserted user: %s (ID: %d)", user.Username, user.ID)
		users[user.Username] = user
	}

	return users, nil
}
