package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/ai"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/config"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/database"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/middleware"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// testServer wires the real router to a sqlite database under a temp dir.
type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithAI(t, "")
}

func newTestServerWithAI(t *testing.T, aiBaseURL string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			TemplatesGlob: "../../web/templates/*.html",
			StaticDir:     "../../web/static",
			Mode:          gin.TestMode,
		},
		Session: config.SessionConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
		AI: config.AIConfig{
			APIKey:  "test-key",
			Model:   "llama-3.3-70b-versatile",
			BaseURL: aiBaseURL,
		},
	}

	db, err := database.Init(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}

	return &testServer{
		engine: router.SetupRouter(cfg, db, ai.NewClient(cfg.AI)),
		db:     db,
	}
}

// get performs a GET with the given session cookies.
func (s *testServer) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST with the given session cookies.
func (s *testServer) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// postJSON performs a JSON POST with the given session cookies.
func (s *testServer) postJSON(t *testing.T, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// signup registers and logs in a user, returning the session cookies.
func (s *testServer) signup(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}

	w := s.postForm(t, "/register", form, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("register %s: code=%d location=%q", username, w.Code, w.Header().Get("Location"))
	}

	w = s.postForm(t, "/login", form, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("login %s: code=%d location=%q", username, w.Code, w.Header().Get("Location"))
	}

	cookies := sessionCookies(w)
	if len(cookies) == 0 {
		t.Fatalf("login %s: no session cookie set", username)
	}
	return cookies
}

// sessionCookies extracts the session cookie from a response.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var out []*http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}

// defaultList returns the user's single list, creating it by visiting the
// dashboard first when needed.
func (s *testServer) defaultList(t *testing.T, username string, cookies []*http.Cookie) models.List {
	t.Helper()
	if w := s.get(t, "/dashboard", cookies); w.Code != http.StatusOK {
		t.Fatalf("dashboard: code=%d", w.Code)
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", username, err)
	}
	var list models.List
	if err := s.db.Where("user_id = ?", user.ID).First(&list).Error; err != nil {
		t.Fatalf("load list for %s: %v", username, err)
	}
	return list
}

// addItem inserts an item through the add form.
func (s *testServer) addItem(t *testing.T, cookies []*http.Cookie, listID uint, name, qty, price string) {
	t.Helper()
	w := s.postForm(t, "/add_item", url.Values{
		"list_id":    {itoa(listID)},
		"item_name":  {name},
		"item_qty":   {qty},
		"item_price": {price},
	}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("add_item %s: code=%d", name, w.Code)
	}
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
