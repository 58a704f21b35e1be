package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/ai"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssistantHandler serves the tools/assistant pages and the ask endpoint.
type AssistantHandler struct {
	DB *gorm.DB
	AI *ai.Client
}

func NewAssistantHandler(db *gorm.DB, aiClient *ai.Client) *AssistantHandler {
	return &AssistantHandler{DB: db, AI: aiClient}
}

// ToolsPage renders the tools overview.
func (h *AssistantHandler) ToolsPage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "tools.html", gin.H{
		"title":    "SmartPlanner - Tools",
		"username": user.Username,
		"flash":    util.PopFlash(c),
	})
}

// AssistantPage renders the assistant chat page.
func (h *AssistantHandler) AssistantPage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "ai_assistant.html", gin.H{
		"title":    "SmartPlanner - AI Assistant",
		"username": user.Username,
		"flash":    util.PopFlash(c),
	})
}

// SpendingItem is one item row annotated with its owning list's name,
// as fed into the assistant's data report.
type SpendingItem struct {
	Name      string
	PriceCent int64
	Quantity  int
	ListName  string
}

// BuildSpendingReport renders the deterministic plain-text summary handed
// to the model: aggregate budget over all lists (archived included), one
// line per item, aggregate spent and the remaining balance.
func BuildSpendingReport(budgetCent int64, items []SpendingItem) string {
	var b strings.Builder
	b.WriteString("User Information:\n")
	fmt.Fprintf(&b, "- Total Budget: RM %s\n", util.FormatMoney(budgetCent))
	b.WriteString("- Item List:\n")

	var spentCent int64
	if len(items) == 0 {
		b.WriteString("  (No items yet)\n")
	} else {
		for _, it := range items {
			spentCent += it.PriceCent * int64(it.Quantity)
			fmt.Fprintf(&b, "  * %s (RM %s x %d) in list '%s'\n",
				it.Name, util.FormatMoney(it.PriceCent), it.Quantity, it.ListName)
		}
	}

	fmt.Fprintf(&b, "\n- Total Spent: RM %s\n", util.FormatMoney(spentCent))
	fmt.Fprintf(&b, "- Remaining Balance: RM %s", util.FormatMoney(budgetCent-spentCent))
	return b.String()
}

func systemPrompt(report string) string {
	return fmt.Sprintf(`You are the SmartPlanner financial assistant.
Answer user questions based on the following data:

%s

IMPORTANT:
- Answer in English.
- If balance is negative, give a warning.`, report)
}

type askRequest struct {
	Question string `json:"question"`
}

// AskAI gathers the user's budgets and items across every list, forwards
// them with the question to the model and returns the answer. Failures of
// the external call come back as an answer string, not an error status.
func (h *AssistantHandler) AskAI(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"answer": "Please login first."})
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusOK, gin.H{"answer": "Please ask a question."})
		return
	}

	// aggregate budget across all lists, archived and active alike
	var budgetCent int64
	if err := h.DB.Model(&models.List{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(budget_cent), 0)").
		Scan(&budgetCent).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"answer": fmt.Sprintf("AI Error: %v", err)})
		return
	}

	var items []SpendingItem
	if err := h.DB.Table("items").
		Select("items.name AS name, items.price_cent AS price_cent, items.quantity AS quantity, lists.name AS list_name").
		Joins("JOIN lists ON items.list_id = lists.id").
		Where("lists.user_id = ?", user.ID).
		Order("items.id ASC").
		Scan(&items).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"answer": fmt.Sprintf("AI Error: %v", err)})
		return
	}

	report := BuildSpendingReport(budgetCent, items)

	answer, err := h.AI.Ask(c.Request.Context(), systemPrompt(report), req.Question)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"answer": fmt.Sprintf("AI Error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
