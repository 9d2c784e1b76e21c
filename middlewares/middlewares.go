package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Auth resolves the bearer token against the redis session store and stashes
// the session payload in the request header for handlers to parse.
func Auth(redis *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("token")
		sessionPayload, err := ValidateToken(token, redis)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			c.Abort()
			return
		}
		c.Request.Header.Set("payload", sessionPayload)
		c.Next()
	}
}

func ValidateToken(authorizationHeader string, redis *redis.Client) (string, error) {
	if !strings.Contains(authorizationHeader, "Bearer") {
		return "", errors.New("invalid-token")
	}
	tokenString := strings.Replace(authorizationHeader, "Bearer ", "", -1)

	sessionPayload, err := redis.Get(context.Background(), tokenString).Result()
	if err != nil {
		return "", err
	}

	if sessionPayload == "" {
		return "", errors.New("empty-payload")
	}

	return sessionPayload, nil
}
