package router

import (
	"net/http"
	"runtime/debug"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/ai"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/config"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/handler"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, aiClient *ai.Client) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	// in debug mode the stack trace is written into the response,
	// matching the development error page
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if gin.Mode() == gin.DebugMode {
			c.String(http.StatusInternalServerError, "%v\n\n%s", recovered, debug.Stack())
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	r.Static("/static", cfg.Server.StaticDir)
	r.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	secret := cfg.Session.Secret

	authHandler := handler.NewAuthHandler(db, secret, cfg.Session.ExpireHours)
	r.GET("/", authHandler.Home)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.GET("/debug_env", handler.DebugEnv)

	// browser-facing routes: no session -> redirect to /login
	pages := r.Group("")
	pages.Use(middleware.AuthRequired(secret, db))

	dashboardHandler := handler.NewDashboardHandler(db)
	pages.GET("/dashboard", dashboardHandler.Dashboard)

	listHandler := handler.NewListHandler(db)
	pages.POST("/create_list", listHandler.CreateList)
	pages.POST("/rename_list", listHandler.RenameList)
	pages.POST("/update_budget", listHandler.UpdateBudget)
	pages.GET("/archive_list/:id", listHandler.ArchiveList)
	pages.GET("/restore_list/:id", listHandler.RestoreList)
	pages.GET("/delete_list_permanent/:id", listHandler.DeleteListPermanent)

	itemHandler := handler.NewItemHandler(db)
	pages.POST("/add_item", itemHandler.AddItem)
	pages.POST("/edit_item", itemHandler.EditItem)
	pages.GET("/delete/:id", itemHandler.DeleteItem)

	historyHandler := handler.NewHistoryHandler(db)
	pages.GET("/history", historyHandler.History)

	accountHandler := handler.NewAccountHandler(db)
	pages.GET("/account", accountHandler.AccountPage)
	pages.POST("/account/password", accountHandler.ChangePassword)
	pages.POST("/account/delete", accountHandler.DeleteAccount)

	assistantHandler := handler.NewAssistantHandler(db, aiClient)
	pages.GET("/tools", assistantHandler.ToolsPage)
	pages.GET("/ai_assistant", assistantHandler.AssistantPage)

	// AJAX routes carry their own unauthorized shapes
	ajax := r.Group("")
	ajax.Use(middleware.AuthRequiredJSON(secret, db))
	ajax.GET("/toggle_bought/:id", itemHandler.ToggleBought)

	ask := r.Group("")
	ask.Use(middleware.AuthRequiredAssistant(secret, db))
	ask.POST("/ask_ai", assistantHandler.AskAI)

	return r
}
