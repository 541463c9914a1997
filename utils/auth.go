// utils/auth.go
package utils

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	ContextAdminID   = "adminId"
	ContextSessionID = "sessionId"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the payload of an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionValidator reports whether a session id is still live server-side.
type SessionValidator interface {
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken signs a session token for the given admin. The session id is
// carried as the jti so the token can be revoked by deleting the session row.
func GenerateToken(adminID, sessionID, secret string, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
		tokenString = strings.TrimSpace(tokenString[7:])
	}
	return tokenString
}

// Auth middleware
func AuthMiddleware(secret string, sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		active, err := sessions.SessionActive(c.Request.Context(), claims.ID)
		if err != nil {
			Logger(c).Error("session lookup failed", zap.String("op", "sessionActive"), zap.Error(err))
			c.AbortWithStatusJSON(500, gin.H{"error": "Internal server error"})
			return
		}
		if !active {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session expired"})
			return
		}

		c.Set(ContextAdminID, claims.Subject)
		c.Set(ContextSessionID, claims.ID)
		c.Next()
	}
}
