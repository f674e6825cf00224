package users

import (
	"fmt"
	"log"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func loginAttemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// IsRateLimited reports whether the email has exceeded the failed-login
// budget. Without Redis the limiter is disabled.
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}

	count, err := DB.RedisClient.Get(DB.RedisCtx, loginAttemptKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the email may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}

	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, loginAttemptKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt records the outcome of a login attempt. A success clears
// the counter; a failure increments it and refreshes the cooldown window.
func LogLoginAttempt(email, ip string, success bool) {
	if DB.RedisClient == nil {
		return
	}

	key := loginAttemptKey(email)
	if success {
		if err := DB.RedisClient.Del(DB.RedisCtx, key).Err(); err != nil {
			log.Println("Failed to clear login attempts:", err)
		}
		return
	}

	count, err := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if err != nil {
		log.Println("Failed to record login attempt:", err)
		return
	}
	if count == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginCooldown)
	}
	log.Printf("Failed login attempt %d for %s from %s", count, email, ip)
}
