package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yuxuan3d/odin-messaging-app/internal/config"
	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/middleware"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"github.com/yuxuan3d/odin-messaging-app/internal/routes"
	"github.com/yuxuan3d/odin-messaging-app/pkg/utils"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB provides a clean in-memory store and a JWT secret, so the full
// router stack can run without postgres or the auth service.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	db.Migrator().DropTable(&models.Message{}, &models.User{})
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	// Handlers go through the global connection, same as main.go.
	database.DB = db
	return db
}

// setupRouter mimics main.go's route wiring. Every request here comes from
// the same httptest client IP, so the per-IP send throttle is lifted; its
// behavior has its own coverage in the middleware package.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.ChatLimiter = middleware.NewIPRateLimiter(rate.Inf, 0)

	r := gin.New()

	api := r.Group("/api")
	{
		routes.RegisterChatRoutes(api)
		routes.RegisterUserRoutes(api)
	}

	return r
}

// createTestUser inserts a user directly and returns the user plus a bearer
// token for them, skipping the external auth service.
func createTestUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	user := models.User{Username: username}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return user, token
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(jsonBytes))
	} else {
		bodyReader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
