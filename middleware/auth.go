package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserId   = "userId"
	ContextUserName = "userName"
)

func jwtKey() []byte {
	return []byte(os.Getenv("KEY"))
}

// GenerateToken issues the bearer token a client presents on every call.
// Identity is opaque to the session engine; the token just pins (id, name).
func GenerateToken(userId, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userId,
		"name": name,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// JWT_decoder extracts the authenticated (id, name) pair from the
// Authorization header.
func JWT_decoder(c *gin.Context) (userId, name string, err error) {
	header := c.GetHeader("Authorization")
	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == "" || raw == header {
		return "", "", fmt.Errorf("missing bearer token")
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	userName, _ := claims["name"].(string)
	if sub == "" {
		return "", "", fmt.Errorf("token has no subject")
	}
	return sub, userName, nil
}

// AuthRequired aborts unauthenticated requests and stashes the identity in
// the gin context for the handlers downstream.
func AuthRequired(c *gin.Context) {
	userId, name, err := JWT_decoder(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(ContextUserId, userId)
	c.Set(ContextUserName, name)
	c.Next()
}
