package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"
)

func TestDashboardCreatesMainList(t *testing.T) {
	s := newTestServer(t)
	cookies := s.signup(t, "alice", "secret123")

	w := s.get(t, "/dashboard", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: code=%d", w.Code)
	}

	var lists []models.List
	if err := s.db.Find(&lists).Error; err != nil {
		t.Fatalf("load lists: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("list count = %d, want 1", len(lists))
	}
	if lists[0].Name != "Main List" || lists[0].BudgetCent != 0 || lists[0].IsArchived {
		t.Errorf("default list = %+v, want active Main List with budget 0", lists[0])
	}

	// a second visit must not create another one
	s.get(t, "/dashboard", cookies)
	var count int64
	s.db.Model(&models.List{}).Count(&count)
	if count != 1 {
		t.Errorf("list count after second visit = %d, want 1", count)
	}
}

// TestDashboardBudgetScenario follows the reference flow: Milk 2 x 3.50
// gives total 7.00 and balance -7.00; a 10.00 budget brings the balance
// to 3.00.
func TestDashboardBudgetScenario(t *testing.T) {
	s := newTestServer(t)
	cookies := s.signup(t, "alice", "secret123")
	list := s.defaultList(t, "alice", cookies)

	s.addItem(t, cookies, list.ID, "Milk", "2", "3.50")

	w := s.get(t, "/dashboard", cookies)
	body := w.Body.String()
	if !strings.Contains(body, "Total spent: RM 7.00") {
		t.Errorf("dashboard missing total 7.00:\n%s", body)
	}
	if !strings.Contains(body, "Balance: RM -7.00") {
		t.Errorf("dashboard missing balance -7.00:\n%s", body)
	}

	w = s.postForm(t, "/update_budget", url.Values{
		"list_id":       {itoa(list.ID)},
		"budget_amount": {"10.00"},
	}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("update_budget: code=%d", w.Code)
	}

	body = s.get(t, "/dashboard", cookies).Body.String()
	if !strings.Contains(body, "Budget: RM 10.00") {
		t.Errorf("dashboard missing budget 10.00:\n%s", body)
	}
	if !strings.Contains(body, "Balance: RM 3.00") {
		t.Errorf("dashboard missing balance 3.00:\n%s", body)
	}
}

func TestDashboardActiveListSelection(t *testing.T) {
	s := newTestServer(t)
	cookies := s.signup(t, "alice", "secret123")
	s.defaultList(t, "alice", cookies)

	w := s.postForm(t, "/create_list", url.Values{"list_name": {"Groceries"}}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("create_list: code=%d", w.Code)
	}

	var groceries models.List
	if err := s.db.Where("name = ?", "Groceries").First(&groceries).Error; err != nil {
		t.Fatalf("load Groceries: %v", err)
	}

	body := s.get(t, "/dashboard?list_id="+itoa(groceries.ID), cookies).Body.String()
	if !strings.Contains(body, "<h2>Groceries</h2>") {
		t.Errorf("explicit list_id did not select Groceries:\n%s", body)
	}

	// a foreign list id falls back to the user's own newest list
	bob := s.signup(t, "bob", "secret123")
	body = s.get(t, "/dashboard?list_id="+itoa(groceries.ID), bob).Body.String()
	if strings.Contains(body, "<h2>Groceries</h2>") {
		t.Errorf("bob saw alice's list")
	}
}

func TestDashboardSearchQueryDoesNotFilter(t *testing.T) {
	s := newTestServer(t)
	cookies := s.signup(t, "alice", "secret123")
	list := s.defaultList(t, "alice", cookies)

	s.addItem(t, cookies, list.ID, "Milk", "1", "3.00")
	s.addItem(t, cookies, list.ID, "Bread", "1", "2.00")

	// the query is echoed back but the item set and totals are untouched
	body := s.get(t, "/dashboard?q=Milk", cookies).Body.String()
	if !strings.Contains(body, "Bread") {
		t.Errorf("search query filtered the item list")
	}
	if !strings.Contains(body, "Total spent: RM 5.00") {
		t.Errorf("search query changed the totals:\n%s", body)
	}
	if !strings.Contains(body, `value="Milk"`) {
		t.Errorf("search query not echoed to the page")
	}
}

func TestRenameListScopedToOwner(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice", "secret123")
	list := s.defaultList(t, "alice", alice)

	bob := s.signup(t, "bob", "secret123")
	s.postForm(t, "/rename_list", url.Values{
		"list_id":  {itoa(list.ID)},
		"new_name": {"Hacked"},
	}, bob)

	var got models.List
	s.db.First(&got, list.ID)
	if got.Name != "Main List" {
		t.Errorf("foreign rename changed the list name to %q", got.Name)
	}

	// the owner's rename goes through
	s.postForm(t, "/rename_list", url.Values{
		"list_id":  {itoa(list.ID)},
		"new_name": {"Weekly"},
	}, alice)
	s.db.First(&got, list.ID)
	if got.Name != "Weekly" {
		t.Errorf("owner rename: name = %q, want Weekly", got.Name)
	}
}
