package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddConversationIndexes adds composite indexes for the two
// hot read paths:
//  1. history pages: pair filter ordered by id descending
//  2. conversation index: per-partner MAX(id) grouped aggregates
//
// AutoMigrate only creates the single-column sender/receiver indexes, which
// force a sort for both queries.
func Migration001AddConversationIndexes() Migration {
	return Migration{
		ID:   "001_add_conversation_indexes",
		Name: "Add composite indexes for history and conversation queries",
		Up: func(db *gorm.DB) error {
			// Covers WHERE sender_id = ? AND receiver_id = ? ... ORDER BY id DESC
			// and the sent-direction GROUP BY aggregate.
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_messages_sender_receiver_id
				ON messages (sender_id, receiver_id, id DESC)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Mirror for the received direction of the same two queries.
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_messages_receiver_sender_id
				ON messages (receiver_id, sender_id, id DESC)
			`
			return db.Exec(idx2).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_messages_receiver_sender_id`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_messages_sender_receiver_id`).Error
		},
	}
}
