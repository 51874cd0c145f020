package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doris-art/database"
	"doris-art/datastore"
	"doris-art/internal/domain/workshops"

	"github.com/gin-gonic/gin"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	datastore.Docs = datastore.New(t.TempDir(), "")
	now = func() time.Time { return time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	r := gin.New()
	r.GET("/api/admin/dashboard", AdminDashboard)
	r.GET("/api/admin/inquiries", ListInquiries)
	return r
}

func TestAdminDashboard(t *testing.T) {
	r := setup(t)
	off := false
	ws := workshops.Document{Workshops: []workshops.Workshop{
		{ID: 1, Schedules: []workshops.Schedule{{ID: 1, Date: "2026-04-05", SpotsTotal: 3, SpotsTaken: 1}}},
		{ID: 2, Schedules: []workshops.Schedule{{ID: 1, Date: "2026-04-05", SpotsTotal: 3, SpotsTaken: 3}}},
		{ID: 3, Active: &off},
	}}
	for i := 0; i < 2; i++ {
		if err := datastore.Docs.Write(datastore.Workshops, ws); err != nil {
			t.Fatal(err)
		}
	}
	if err := datastore.Docs.Write(datastore.Gallery, map[string]any{"images": []map[string]any{{"id": 1, "src": "/a.jpg"}}}); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200; got %d %s", w.Code, w.Body)
	}
	var stats AdminStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	by := stats.Workshops.ByState
	if stats.Workshops.Total != 3 || by[workshops.StatusActive] != 1 || by[workshops.StatusSoldOut] != 1 || by[workshops.StatusInactive] != 1 {
		t.Fatalf("unexpected workshop stats %+v", stats.Workshops)
	}
	if stats.Images[datastore.Gallery] != 1 || stats.Images[datastore.Photography] != 0 {
		t.Fatalf("unexpected image counts %+v", stats.Images)
	}
	doc := stats.Documents[datastore.Workshops]
	if !doc.Present || doc.Backups != 1 || doc.LastBackup == nil {
		t.Fatalf("unexpected document stats %+v", doc)
	}
	if stats.Documents[datastore.About].Present {
		t.Fatalf("about was never written")
	}
}

func TestListInquiries_WithoutLedger(t *testing.T) {
	r := setup(t)
	prev := database.DB
	database.DB = nil
	t.Cleanup(func() { database.DB = prev })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"inquiries":[],"ledger":false}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body)
	}
}
