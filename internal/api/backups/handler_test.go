package backups

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doris-art/datastore"

	"github.com/gin-gonic/gin"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	datastore.Docs = datastore.New(t.TempDir(), "")
	tick := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	datastore.Docs.SetClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})

	r := gin.New()
	r.GET("/api/admin/backups", List)
	r.POST("/api/admin/backups/cleanup", Cleanup)
	r.POST("/api/admin/backups/restore", Restore)
	return r
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAndRestore(t *testing.T) {
	r := setup(t)
	for _, img := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if err := datastore.Docs.Write(datastore.About, map[string]string{"image": img}); err != nil {
			t.Fatal(err)
		}
	}

	w := call(r, http.MethodGet, "/api/admin/backups?key=about", "")
	var out struct {
		Backups []backupDTO `json:"backups"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Backups) != 2 {
		t.Fatalf("expected 2 backups; got %d", len(out.Backups))
	}
	oldest := out.Backups[len(out.Backups)-1].Name

	w = call(r, http.MethodPost, "/api/admin/backups/restore", `{"name":"`+oldest+`"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"key":"about"`) {
		t.Fatalf("restore failed: %d %s", w.Code, w.Body)
	}
	var live map[string]string
	_ = datastore.Docs.Read(datastore.About, &live)
	if live["image"] != "a.jpg" {
		t.Fatalf("expected first version restored; got %v", live)
	}

	if w := call(r, http.MethodPost, "/api/admin/backups/restore", `{"name":"about_2020-01-01T00-00-00-000Z.json"}`); w.Code != http.StatusNotFound {
		t.Fatalf("missing backup should 404; got %d", w.Code)
	}
	if w := call(r, http.MethodGet, "/api/admin/backups?key=users", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown key should 400; got %d", w.Code)
	}
}

func TestCleanup(t *testing.T) {
	r := setup(t)
	datastore.Docs.AutoCleanup = false
	for i := 0; i < 13; i++ {
		if err := datastore.Docs.Write(datastore.Gallery, map[string]int{"n": i}); err != nil {
			t.Fatal(err)
		}
	}
	if w := call(r, http.MethodPost, "/api/admin/backups/cleanup", ""); w.Code != http.StatusOK {
		t.Fatalf("cleanup failed: %d", w.Code)
	}
	list, _ := datastore.Docs.ListBackups(datastore.Gallery)
	if len(list) != datastore.DefaultRetain {
		t.Fatalf("expected %d backups kept; got %d", datastore.DefaultRetain, len(list))
	}
}
