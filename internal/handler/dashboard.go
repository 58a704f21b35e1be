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

// DashboardHandler renders the main shopping view.
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// itemView is an item formatted for the templates, with the line total
// precomputed.
type itemView struct {
	ID       uint
	Name     string
	Qty      int
	Price    string
	Total    string
	Category string
	IsBought bool
}

func toItemView(it *models.Item) itemView {
	return itemView{
		ID:       it.ID,
		Name:     it.Name,
		Qty:      it.Quantity,
		Price:    util.FormatMoney(it.PriceCent),
		Total:    util.FormatMoney(it.LineTotalCent()),
		Category: it.Category,
		IsBought: it.IsBought,
	}
}

// activeLists returns the user's non-archived lists newest first, creating
// the default "Main List" when there are none. Every user always has at
// least one visible list after a dashboard visit.
func (h *DashboardHandler) activeLists(userID uint) ([]models.List, error) {
	var lists []models.List
	if err := h.DB.
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC, id DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		def := models.List{UserID: userID, Name: "Main List"}
		if err := h.DB.Create(&def).Error; err != nil {
			return nil, err
		}
		lists = append(lists, def)
	}
	return lists, nil
}

// Dashboard shows the active list with line totals, total spent and the
// remaining balance against the list budget.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	query := c.Query("q")

	lists, err := h.activeLists(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	// resolve the active list: explicit ?list_id= when it belongs to the
	// user, otherwise the newest list
	var active *models.List
	if idStr := c.Query("list_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			var l models.List
			if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&l).Error; err == nil {
				active = &l
			}
		}
	}
	if active == nil {
		active = &lists[0]
	}

	var items []models.Item
	if err := h.DB.Where("list_id = ?", active.ID).Order("id ASC").Find(&items).Error; err != nil {
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	var totalSpentCent int64
	views := make([]itemView, 0, len(items))
	for i := range items {
		totalSpentCent += items[i].LineTotalCent()
		views = append(views, toItemView(&items[i]))
	}
	balanceCent := active.BudgetCent - totalSpentCent

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":       "SmartPlanner - Dashboard",
		"username":    user.Username,
		"lists":       lists,
		"active_list": active,
		"items":       views,
		"total":       util.FormatMoney(totalSpentCent),
		"budget":      util.FormatMoney(active.BudgetCent),
		"balance":     util.FormatMoney(balanceCent),
		"overBudget":  balanceCent < 0,
		"searchQuery": query,
		"flash":       util.PopFlash(c),
	})
}
