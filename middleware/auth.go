package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// UserIDKey is the gin context key the auth middleware stores the user id
// under.
const UserIDKey = "userID"

// RequireAuth rejects requests without a valid session token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseToken(c, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required", "redirect": "/login"})
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present but lets the
// request through either way. Add-to-cart uses this so unauthenticated adds
// can be deferred instead of rejected outright.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseToken(c, secret); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
