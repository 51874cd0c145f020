package siteapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doris-art/config"
	"doris-art/datastore"

	"github.com/gin-gonic/gin"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	datastore.Docs = datastore.New(t.TempDir(), "")
	config.Site = config.DefaultSiteProfile()
	now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	r := gin.New()
	r.GET("/api/admin/settings", GetSettings)
	r.PUT("/api/admin/settings", UpdateSettings)
	r.GET("/api/admin/about", GetAbout)
	r.PUT("/api/admin/about", UpdateAbout)
	r.GET("/api/settings", PublicSettings)
	r.GET("/api/about", PublicAbout)
	r.GET("/sitemap.xml", Sitemap)
	return r
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSettings_DefaultsThenUpdate(t *testing.T) {
	r := setup(t)
	w := call(r, http.MethodGet, "/api/admin/settings", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Razsvetljava") {
		t.Fatalf("expected default categories; got %d %s", w.Code, w.Body)
	}

	w = call(r, http.MethodPut, "/api/admin/settings", `{"rentalCategories":["Tekstil"],"pageVisibility":{"rentals":false}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body)
	}
	if PageVisibility()["rentals"] {
		t.Fatalf("rentals should now be hidden")
	}

	w = call(r, http.MethodGet, "/api/settings", "")
	if strings.Contains(w.Body.String(), "rentalCategories") || !strings.Contains(w.Body.String(), `"rentals":false`) {
		t.Fatalf("public settings must only expose visibility; got %s", w.Body)
	}
}

func TestSettings_Validation(t *testing.T) {
	r := setup(t)
	w := call(r, http.MethodPut, "/api/admin/settings", `{"rentalCategories":[""],"pageVisibility":{}}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), `"path":"rentalCategories[0]"`) {
		t.Fatalf("expected category error; got %d %s", w.Code, w.Body)
	}
}

func TestPublicSettings_DefaultVisibility(t *testing.T) {
	r := setup(t)
	w := call(r, http.MethodGet, "/api/settings", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"other":true`) {
		t.Fatalf("expected default visibility with other; got %s", w.Body)
	}
}

func TestAbout(t *testing.T) {
	r := setup(t)
	w := call(r, http.MethodGet, "/api/about", "")
	if !strings.Contains(w.Body.String(), "/images/author/doris.jpeg") {
		t.Fatalf("expected default about; got %s", w.Body)
	}
	if w := call(r, http.MethodPut, "/api/admin/about", `{"biography":{"sl":["a"]},"image":"/x.jpg"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing en biography should be rejected; got %d", w.Code)
	}
	if w := call(r, http.MethodPut, "/api/admin/about", `{"biography":{"sl":["a"],"en":["b"]},"image":"/x.jpg"}`); w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body)
	}
	w = call(r, http.MethodGet, "/api/about", "")
	if !strings.Contains(w.Body.String(), "/x.jpg") {
		t.Fatalf("expected stored about; got %s", w.Body)
	}
}

func TestSitemap_ListsActiveRentalsOnly(t *testing.T) {
	r := setup(t)
	err := datastore.Docs.Write(datastore.Rentals, map[string]any{"rentals": []map[string]any{
		{"id": 3, "title": "Vaza"},
		{"id": 5, "title": "Stol", "active": false},
	}})
	if err != nil {
		t.Fatal(err)
	}
	w := call(r, http.MethodGet, "/sitemap.xml", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml") {
		t.Fatalf("unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	body := w.Body.String()
	if !strings.Contains(body, "https://doriseinfalt.art/sl/izposoja/3") {
		t.Fatalf("active rental missing:\n%s", body)
	}
	if strings.Contains(body, "izposoja/5") {
		t.Fatalf("inactive rental listed:\n%s", body)
	}
}
