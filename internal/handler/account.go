package handler

import (
	"net/http"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountHandler serves account settings: password change and account
// deletion. Deleting the user row cascades to lists and items through the
// FK constraints; nothing here re-implements the cascade.
type AccountHandler struct {
	DB *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{DB: db}
}

// AccountPage renders the settings form.
func (h *AccountHandler) AccountPage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "account.html", gin.H{
		"title":    "SmartPlanner - Account",
		"username": user.Username,
		"flash":    util.PopFlash(c),
	})
}

// ChangePassword verifies the current password before storing a new hash.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	oldPassword := c.PostForm("old_password")
	newPassword := c.PostForm("new_password")
	if newPassword == "" {
		util.Flash(c, "danger", "New password is required.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		util.Flash(c, "danger", "Current password is incorrect.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		util.Flash(c, "danger", "Error: could not hash password.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	if err := h.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("password_hash", string(hash)).Error; err != nil {
		util.Flash(c, "danger", "Error: could not update password.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	util.Flash(c, "success", "Password updated.")
	c.Redirect(http.StatusFound, "/account")
}

// DeleteAccount removes the user after a password confirmation and ends
// the session.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(c.PostForm("password"))); err != nil {
		util.Flash(c, "danger", "Password is incorrect.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	if err := h.DB.Delete(&models.User{}, user.ID).Error; err != nil {
		util.Flash(c, "danger", "Error: could not delete account.")
		c.Redirect(http.StatusFound, "/account")
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	util.Flash(c, "info", "Your account has been deleted.")
	c.Redirect(http.StatusFound, "/login")
}
