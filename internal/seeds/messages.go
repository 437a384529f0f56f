package seeds

import (
	"log"
	"time"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
)

type seedMessage struct {
	From    string
	To      string
	Content string
}

// Demo conversations between the four seed accounts, oldest first. The
// trailing burst exercises same-window ordering in the conversation list.
var seedMessages = []seedMessage{
	{"aaa", "Bob", "Hi Bob!"},
	{"Bob", "aaa", "Hey aaa, how are you?"},
	{"aaa", "Bob", "Doing great! Ready for testing?"},
	{"Bob", "aaa", "Absolutely!"},
	{"Charlie", "Dave", "Hey Dave, got the latest code?"},
	{"Dave", "Charlie", "Yep, pulling now."},
	{"Bob", "Charlie", "Morning Charlie!"},

	{"aaa", "Bob", "Found a small bug in the login flow."},
	{"Bob", "aaa", "Oh? Which part?"},
	{"aaa", "Bob", "When using special characters in the password."},
	{"Bob", "aaa", "Okay, I'll take a look. Thanks!"},

	{"Charlie", "Dave", "Build passed!"},
	{"Dave", "Charlie", "Great! Deploying to staging."},
	{"Charlie", "Dave", "Let me know when it's up."},
	{"Dave", "Charlie", "Done. Check staging URL."},

	{"aaa", "Charlie", "Hey Charlie, need your input on the UI."},
	{"Charlie", "aaa", "Sure, what's up?"},
	{"aaa", "Charlie", "The color scheme for the buttons."},
	{"Charlie", "aaa", "Let's stick to the primary blue for now."},

	{"Bob", "Dave", "Dave, did you update the schema?"},
	{"Dave", "Bob", "Not yet, was planning to do it this afternoon."},
	{"Bob", "Dave", "Okay, make sure to run migrations after."},
	{"Dave", "Bob", "Will do."},

	{"Dave", "aaa", "Quick question about the auth context."},
	{"aaa", "Dave", "Shoot."},
	{"Dave", "aaa", "How are we handling token refresh?"},
	{"aaa", "Dave", "We are using sessions, so no token refresh needed."},

	{"Charlie", "Bob", "Morning Bob! Coffee?"},
	{"Bob", "Charlie", "Already got mine, but thanks!"},
	{"Charlie", "Bob", "Alright, see you at standup."},

	{"aaa", "Bob", "Test 1"},
	{"aaa", "Bob", "Test 2"},
	{"Bob", "aaa", "Reply 1"},
	{"aaa", "Bob", "Test 3"},

	{"Dave", "aaa", "Okay, sessions make sense."},
}

// SeedMessages wipes and recreates the demo message log. Timestamps are
// staggered five seconds apart ending now, so insertion order, id order and
// createdAt order all agree, like the real delivery path guarantees.
func SeedMessages(users map[string]models.User) error {
	log.Println("Deleting existing messages...")
	if err := database.DB.Where("1 = 1").Delete(&models.Message{}).Error; err != nil {
		return err
	}

	log.Printf("Seeding %d messages...", len(seedMessages))

	now := time.Now()
	for i, sm := range seedMessages {
		secondsAgo := time.Duration(len(seedMessages)-1-i) * 5 * time.Second
		msg := models.Message{
			SenderID:   users[sm.From].ID,
			ReceiverID: users[sm.To].ID,
			Content:    sm.Content,
			CreatedAt:  now.Add(-secondsAgo),
		}
		if err := database.DB.Create(&msg).Error; err != nil {
			return err
		}
	}

	log.Println("Seeding finished.")
	return nil
}
