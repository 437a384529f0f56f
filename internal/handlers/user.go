package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"gorm.io/gorm"
)

// GetProfile returns the authenticated user's own record.
func GetProfile(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type updateBioInput struct {
	Bio string `json:"bio"`
}

// UpdateBio replaces the user's bio text.
func UpdateBio(c *gin.Context) {
	userID := currentUserID(c)

	var input updateBioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		respondError(c, err)
		return
	}

	user.Bio = input.Bio
	if err := database.DB.Save(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SearchUser looks a user up by exact username, for starting a new
// conversation. The requesting user is excluded from results.
func SearchUser(c *gin.Context) {
	userID := currentUserID(c)

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username parameter"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}

	if user.ID == userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cannot add yourself"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
