package services

import (
	"errors"
	"fmt"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	apperrors "github.com/yuxuan3d/odin-messaging-app/pkg/errors"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// HistoryPage is one reverse-chronological page of a conversation.
// NextCursor is nil at the end of history.
type HistoryPage struct {
	Messages   []models.Message `json:"messages"`
	NextCursor *uint            `json:"nextCursor"`
}

// GetHistory returns up to limit messages between user and partner, newest
// first, continuing strictly after the cursor message when one is given.
//
// Pagination is keyset on the message id, which is immutable and assigned
// monotonically at insert, so pages already handed out never shift when new
// messages arrive: fresh messages only ever appear ahead of the first page.
func GetHistory(userID, partnerID uint, limit int, cursor *uint) (*HistoryPage, error) {
	if partnerID == userID {
		return nil, apperrors.Validation("Cannot fetch a conversation with yourself")
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, apperrors.Validation(fmt.Sprintf("Limit must be between 1 and %d", MaxPageSize))
	}

	var partner models.User
	if err := database.DB.Select("id").First(&partner, partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Partner not found")
		}
		return nil, fmt.Errorf("looking up partner: %w", err)
	}

	// A cursor must resolve to a message of this exact pair. Silently
	// ignoring a bad cursor would fabricate an empty page that looks like
	// the end of history.
	if cursor != nil {
		var anchor models.Message
		err := database.DB.Select("id").
			Where("id = ?", *cursor).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				userID, partnerID, partnerID, userID).
			First(&anchor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Cursor does not reference a message in this conversation")
			}
			return nil, fmt.Errorf("resolving cursor: %w", err)
		}
	}

	query := database.DB.Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit + 1)
	if cursor != nil {
		query = query.Where("id < ?", *cursor)
	}

	messages := make([]models.Message, 0, limit+1)
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("loading history page: %w", err)
	}

	page := &HistoryPage{Messages: messages}
	if len(messages) > limit {
		// The extra row only proves another page exists. The cursor is the
		// last returned row's id; the next request resumes strictly below it.
		page.Messages = messages[:limit]
		next := page.Messages[limit-1].ID
		page.NextCursor = &next
	}

	return page, nil
}
