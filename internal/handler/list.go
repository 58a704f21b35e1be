package handler

import (
	"net/http"
	"strconv"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListHandler serves list-level mutations. Every statement is scoped by
// user_id so one user can never touch another user's lists; an unmatched
// owner is a silent no-op, not an error.
type ListHandler struct {
	DB *gorm.DB
}

func NewListHandler(db *gorm.DB) *ListHandler {
	return &ListHandler{DB: db}
}

// CreateList adds a new list with budget 0, not archived.
func (h *ListHandler) CreateList(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := c.PostForm("list_name")
	if name != "" {
		list := models.List{UserID: user.ID, Name: name}
		_ = h.DB.Create(&list).Error
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// RenameList updates a list name when both id and owner match.
func (h *ListHandler) RenameList(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	listID := c.PostForm("list_id")
	newName := c.PostForm("new_name")
	if listID != "" && newName != "" {
		_ = h.DB.Model(&models.List{}).
			Where("id = ? AND user_id = ?", listID, user.ID).
			Update("name", newName).Error
	}
	c.Redirect(http.StatusFound, "/dashboard?list_id="+listID)
}

// UpdateBudget stores the submitted budget as given; unparsable input is
// dropped silently like the other form routes.
func (h *ListHandler) UpdateBudget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	listID := c.PostForm("list_id")
	amount := c.PostForm("budget_amount")
	if listID != "" && amount != "" {
		if cent, err := util.ParseMoney(amount); err == nil {
			_ = h.DB.Model(&models.List{}).
				Where("id = ? AND user_id = ?", listID, user.ID).
				Update("budget_cent", cent).Error
		}
	}
	c.Redirect(http.StatusFound, "/dashboard?list_id="+listID)
}

// ArchiveList moves a list to the history view.
func (h *ListHandler) ArchiveList(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		_ = h.DB.Model(&models.List{}).
			Where("id = ? AND user_id = ?", id, user.ID).
			Update("is_archived", true).Error
	}
	util.Flash(c, "success", "List archived successfully.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// RestoreList brings an archived list back to the dashboard.
func (h *ListHandler) RestoreList(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	idStr := c.Param("id")
	if id, err := strconv.Atoi(idStr); err == nil {
		_ = h.DB.Model(&models.List{}).
			Where("id = ? AND user_id = ?", id, user.ID).
			Update("is_archived", false).Error
	}
	util.Flash(c, "success", "List restored to dashboard.")
	c.Redirect(http.StatusFound, "/dashboard?list_id="+idStr)
}

// DeleteListPermanent removes a list for good; its items go with it via
// the FK cascade. The route is reached from history but does not itself
// require the list to be archived.
func (h *ListHandler) DeleteListPermanent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		_ = h.DB.
			Where("id = ? AND user_id = ?", id, user.ID).
			Delete(&models.List{}).Error
	}
	util.Flash(c, "success", "List deleted permanently.")
	c.Redirect(http.StatusFound, "/history")
}
