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

// ItemHandler serves item-level mutations. Items carry no user_id of their
// own, so ownership checks go through the owning list.
type ItemHandler struct {
	DB *gorm.DB
}

func NewItemHandler(db *gorm.DB) *ItemHandler {
	return &ItemHandler{DB: db}
}

// ownedListIDs is the subquery restricting item statements to lists that
// belong to the requesting user.
func (h *ItemHandler) ownedListIDs(userID uint) *gorm.DB {
	return h.DB.Model(&models.List{}).Select("id").Where("user_id = ?", userID)
}

// AddItem inserts a new item. Missing or unparsable fields drop the insert
// silently and redirect back, mirroring the add form's behavior.
func (h *ItemHandler) AddItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	listIDStr := c.PostForm("list_id")
	name := c.PostForm("item_name")
	qtyStr := c.PostForm("item_qty")
	priceStr := c.PostForm("item_price")
	category := c.PostForm("item_category")
	if category == "" {
		category = "General"
	}

	if listIDStr == "" || name == "" || qtyStr == "" || priceStr == "" {
		c.Redirect(http.StatusFound, "/dashboard?list_id="+listIDStr)
		return
	}

	listID, errID := strconv.Atoi(listIDStr)
	qty, errQty := util.ParseQuantity(qtyStr)
	priceCent, errPrice := util.ParseMoney(priceStr)
	if errID != nil || errQty != nil || errPrice != nil {
		c.Redirect(http.StatusFound, "/dashboard?list_id="+listIDStr)
		return
	}

	// only insert into the user's own lists
	var count int64
	if err := h.DB.Model(&models.List{}).
		Where("id = ? AND user_id = ?", listID, user.ID).
		Count(&count).Error; err == nil && count > 0 {
		item := models.Item{
			ListID:    uint(listID),
			Name:      name,
			PriceCent: priceCent,
			Quantity:  qty,
			Category:  category,
		}
		_ = h.DB.Create(&item).Error
	}
	c.Redirect(http.StatusFound, "/dashboard?list_id="+listIDStr)
}

// EditItem overwrites the four mutable fields of an item the user owns.
func (h *ItemHandler) EditItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	itemID := c.PostForm("item_id")
	listID := c.PostForm("list_id")
	name := c.PostForm("item_name")
	qtyStr := c.PostForm("item_qty")
	priceStr := c.PostForm("item_price")
	category := c.PostForm("item_category")

	qty, errQty := util.ParseQuantity(qtyStr)
	priceCent, errPrice := util.ParseMoney(priceStr)
	if itemID == "" || name == "" || errQty != nil || errPrice != nil {
		c.Redirect(http.StatusFound, "/dashboard?list_id="+listID)
		return
	}

	_ = h.DB.Model(&models.Item{}).
		Where("id = ? AND list_id IN (?)", itemID, h.ownedListIDs(user.ID)).
		Updates(map[string]interface{}{
			"name":       name,
			"quantity":   qty,
			"price_cent": priceCent,
			"category":   category,
		}).Error

	c.Redirect(http.StatusFound, "/dashboard?list_id="+listID)
}

// DeleteItem removes one item. The owning list is looked up first so the
// redirect lands back on the right list; a missing item just goes back to
// the dashboard.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var item models.Item
	if err := h.DB.
		Where("id = ? AND list_id IN (?)", id, h.ownedListIDs(user.ID)).
		First(&item).Error; err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	_ = h.DB.Delete(&models.Item{}, item.ID).Error
	c.Redirect(http.StatusFound, "/dashboard?list_id="+strconv.Itoa(int(item.ListID)))
}

// ToggleBought flips the bought flag and reports the new state. Unknown
// ids (including other users' items) answer success:false with HTTP 200.
func (h *ItemHandler) ToggleBought(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.JSONUnauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.JSONOK(c, util.Response{"success": false, "new_status": 0})
		return
	}

	var item models.Item
	if err := h.DB.
		Where("id = ? AND list_id IN (?)", id, h.ownedListIDs(user.ID)).
		First(&item).Error; err != nil {
		util.JSONOK(c, util.Response{"success": false, "new_status": 0})
		return
	}

	newStatus := !item.IsBought
	if err := h.DB.Model(&item).Update("is_bought", newStatus).Error; err != nil {
		util.JSONOK(c, util.Response{"success": false, "new_status": 0})
		return
	}

	status := 0
	if newStatus {
		status = 1
	}
	util.JSONOK(c, util.Response{"success": true, "new_status": status})
}
