package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionCookie holds the signed session token.
const SessionCookie = "sp_token"

// resolveUser extracts the session token (cookie, Bearer header or ?token=),
// validates it and loads the user row. Returns nil when not logged in.
func resolveUser(c *gin.Context, secret string, db *gorm.DB) *models.User {
	var tokenStr string

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		tokenStr = cookie
	}
	if tokenStr == "" {
		authHeader := c.GetHeader("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = parts[1]
		}
	}
	if tokenStr == "" {
		tokenStr = c.Query("token")
	}
	if tokenStr == "" {
		return nil
	}

	claims, err := util.ParseToken(secret, tokenStr)
	if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return nil
	}

	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return nil
	}
	return &user
}

// AuthRequired protects browser-facing pages; anonymous requests are
// redirected to the login page.
func AuthRequired(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, secret, db)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

// AuthRequiredJSON protects AJAX endpoints; anonymous requests get a 401
// JSON body instead of a redirect.
func AuthRequiredJSON(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, secret, db)
		if user == nil {
			util.JSONUnauthorized(c)
			c.Abort()
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

// AuthRequiredAssistant protects the ask endpoint. The assistant page
// script expects a 200 with an answer string even when the session has
// expired, so the failure body is an answer, not an error status.
func AuthRequiredAssistant(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, secret, db)
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"answer": "Please login first."})
			c.Abort()
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

// CurrentUser returns the user stored by the auth middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
