package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserScopes = "X-User-Scopes"
	HeaderUserID     = "X-User-Id"

	userIDKey = "userID"
)

type AuthMiddleware interface {
	RequireUser() gin.HandlerFunc
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
}

// RequireUser trusts the identity asserted by the gateway in front of the service.
func (a *authMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Request.Header.Get(HeaderUserID))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": HeaderUserID + " header is empty",
			})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopesHeader := c.Request.Header.Get(HeaderUserScopes)
		if len(scopesHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": HeaderUserScopes + " header is empty",
			})
			return
		}
		scopes := strings.Split(scopesHeader, ",")
		for i := range scopes {
			scopes[i] = strings.TrimSpace(scopes[i])
		}
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the id stored by RequireUser, falling back to the raw header.
func UserID(c *gin.Context) string {
	if userID := c.GetString(userIDKey); userID != "" {
		return userID
	}
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
