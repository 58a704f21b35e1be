package handler

import (
	"net/http"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HistoryHandler renders archived lists with their totals.
type HistoryHandler struct {
	DB *gorm.DB
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{DB: db}
}

type archiveView struct {
	List           models.List
	Total          string
	PurchasedItems []itemView
}

// History loads every archived list in full; there is no pagination.
func (h *HistoryHandler) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var archived []models.List
	if err := h.DB.
		Where("user_id = ? AND is_archived = ?", user.ID, true).
		Order("created_at DESC, id DESC").
		Find(&archived).Error; err != nil {
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	archives := make([]archiveView, 0, len(archived))
	for i := range archived {
		lst := archived[i]

		var items []models.Item
		if err := h.DB.Where("list_id = ?", lst.ID).Order("id ASC").Find(&items).Error; err != nil {
			c.String(http.StatusInternalServerError, "database error")
			return
		}

		var totalCent int64
		views := make([]itemView, 0, len(items))
		for j := range items {
			totalCent += items[j].LineTotalCent()
			views = append(views, toItemView(&items[j]))
		}

		archives = append(archives, archiveView{
			List:           lst,
			Total:          util.FormatMoney(totalCent),
			PurchasedItems: views,
		})
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"title":    "SmartPlanner - History",
		"username": user.Username,
		"archives": archives,
		"flash":    util.PopFlash(c),
	})
}
