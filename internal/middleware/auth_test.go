package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yuxuan3d/odin-messaging-app/internal/config"
	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"github.com/yuxuan3d/odin-messaging-app/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) models.User {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.Migrator().DropTable(&models.Message{}, &models.User{})
	database.DB.AutoMigrate(&models.User{}, &models.Message{})

	user := models.User{Username: "alice"}
	database.DB.Create(&user)
	return user
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/chat/conversations", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	AuthMiddleware()(c)
	return w, c
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	user := setupAuthTest(t)

	token, err := utils.GenerateToken(user.ID)
	assert.NoError(t, err)

	w, c := runAuth(t, "Bearer "+token)

	assert.False(t, c.IsAborted())
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, user.ID, c.MustGet("userId").(uint))
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	setupAuthTest(t)

	w, c := runAuth(t, "")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	setupAuthTest(t)

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		w, c := runAuth(t, header)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddlewareRejectsUnknownUser(t *testing.T) {
	setupAuthTest(t)

	token, err := utils.GenerateToken(9999)
	assert.NoError(t, err)

	w, c := runAuth(t, "Bearer "+token)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
