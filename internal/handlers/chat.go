package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/services"
	"github.com/yuxuan3d/odin-messaging-app/pkg/errors"
	"github.com/yuxuan3d/odin-messaging-app/pkg/logger"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userId").(uint)
}

// respondError maps service errors onto HTTP responses. Anything outside the
// AppError taxonomy is a store failure: logged, surfaced as 503, never
// retried here.
func respondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Message store failure")
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Message store unavailable"})
}

// GetConversations returns the user's conversation list, one entry per
// partner, newest activity first.
func GetConversations(c *gin.Context) {
	userID := currentUserID(c)

	conversations, err := services.ListConversations(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// GetHistory returns one page of a conversation.
// Query params: partner (required), limit (1-100, default 30), cursor
// (message id from a previous page's nextCursor).
func GetHistory(c *gin.Context) {
	userID := currentUserID(c)

	partnerID, err := strconv.ParseUint(c.Query("partner"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner parameter"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
	}

	var cursor *uint
	if cursorStr := c.Query("cursor"); cursorStr != "" {
		parsed, err := strconv.ParseUint(cursorStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor parameter"})
			return
		}
		v := uint(parsed)
		cursor = &v
	}

	page, err := services.GetHistory(userID, uint(partnerID), limit, cursor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

type sendMessageInput struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// SendMessage accepts an outbound message and returns the stored row. The
// response is what an optimistic client reconciles its provisional entry
// against; on a non-2xx status the client drops the entry instead.
func SendMessage(c *gin.Context) {
	senderID := currentUserID(c)

	var input sendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid field: " + fieldErrs[0].Field()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	allowed, err := database.CheckSendRateLimit(senderID, 30, time.Minute)
	if err != nil {
		logger.Warn().Err(err).Msg("Send rate limit check failed")
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Sending too fast, slow down"})
		return
	}

	msg, err := services.SendMessage(senderID, input.ReceiverID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	// Push to both participants' rooms so every connected device converges
	// without polling.
	BroadcastMessage(msg)

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
