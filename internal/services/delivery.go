package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	apperrors "github.com/yuxuan3d/odin-messaging-app/pkg/errors"
	"gorm.io/gorm"
)

// SendMessage validates and persists one outbound message, returning the
// stored row with sender and receiver resolved.
//
// The insert assigns the autoincrement id and CreatedAt together, so the two
// orderings agree and (createdAt, id) forms a single total order across the
// store. The coordinator is stateless and does no deduplication: sending the
// same content twice stores two messages. A client rendering an optimistic
// provisional entry reconciles it against the returned message (the server
// never learns the client's temporary id) and drops the entry on error.
func SendMessage(senderID, receiverID uint, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("Message content is required")
	}
	if receiverID == senderID {
		return nil, apperrors.Validation("Cannot send a message to yourself")
	}

	var receiver models.User
	if err := database.DB.Select("id").First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Receiver not found")
		}
		return nil, fmt.Errorf("looking up receiver: %w", err)
	}

	msg := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("storing message: %w", err)
	}

	if err := database.DB.Preload("Sender").Preload("Receiver").First(&msg, msg.ID).Error; err != nil {
		return nil, fmt.Errorf("reloading stored message: %w", err)
	}

	return &msg, nil
}
