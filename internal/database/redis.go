package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yuxuan3d/odin-messaging-app/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Send rate limiting and token revocation will be disabled.", err)
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// CheckSendRateLimit enforces a sliding per-user cap on outbound messages.
// Fails open when Redis is down: losing spam protection beats refusing
// every send.
func CheckSendRateLimit(userID uint, limit int, window time.Duration) (bool, error) {
	if Redis == nil {
		return true, nil
	}

	key := fmt.Sprintf("send_limit:%d", userID)
	count, err := Redis.Incr(Ctx, key).Result()
	if err != nil {
		return true, err
	}

	if count == 1 {
		Redis.Expire(Ctx, key, window)
	}

	return count <= int64(limit), nil
}

// BlacklistToken marks a token id as revoked until its natural expiry.
func BlacklistToken(jti string, ttl time.Duration) error {
	if Redis == nil || jti == "" {
		return nil
	}
	return Redis.Set(Ctx, "revoked_token:"+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the auth service revoked this token.
func IsTokenBlacklisted(jti string) bool {
	if Redis == nil || jti == "" {
		return false
	}
	exists, err := Redis.Exists(Ctx, "revoked_token:"+jti).Result()
	if err != nil {
		return false
	}
	return exists > 0
}
