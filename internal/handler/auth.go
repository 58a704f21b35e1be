package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves register/login/logout.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"title": "SmartPlanner - Register",
		"flash": util.PopFlash(c),
	})
}

// Register creates a user with a bcrypt-hashed password. A taken username
// leaves the users table unchanged and does not create a session.
func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		util.Flash(c, "danger", "Username and password are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		util.Flash(c, "danger", "Error: could not check username.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if count > 0 {
		util.Flash(c, "danger", "Username already taken.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		util.Flash(c, "danger", "Error: could not hash password.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := h.DB.Create(&user).Error; err != nil {
		// unique index races still land here
		util.Flash(c, "danger", "Username already taken.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	util.Flash(c, "success", "Registration successful! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "SmartPlanner - Login",
		"flash": util.PopFlash(c),
	})
}

// Login verifies the password hash and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	err := h.DB.Where("username = ?", username).First(&user).Error
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	}
	if err != nil {
		util.Flash(c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		util.Flash(c, "danger", "Error: could not create session.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	util.Flash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}

// Home redirects to the dashboard when logged in, otherwise to login.
func (h *AuthHandler) Home(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie != "" {
		if _, err := util.ParseToken(h.JWTSecret, cookie); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}
