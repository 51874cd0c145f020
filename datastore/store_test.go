package datastore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

type doc struct {
	Items []item `json:"items"`
}

type item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "data"), "")
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func TestWriteThenRead_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := doc{Items: []item{{ID: 1, Title: "Akvarel <za otroke> & starše"}, {ID: 2, Title: "Olje"}}}
	if err := s.Write(Paintings, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out doc
	if err := s.Read(Paintings, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestWrite_PrettyPrintedWithTrailingNewline(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(Gallery, doc{Items: []item{{ID: 1, Title: "a"}}}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(s.Path(Gallery))
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if !strings.HasSuffix(got, "}\n") {
		t.Fatalf("expected trailing newline; got %q", got)
	}
	if !strings.Contains(got, "\n  \"items\": [\n    {\n      \"id\": 1,") {
		t.Fatalf("expected two-space indentation; got %q", got)
	}
}

func TestWrite_FirstWriteCreatesNoBackup(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(Rentals, doc{}); err != nil {
		t.Fatal(err)
	}
	backups, err := s.ListBackups("")
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups; got %d", len(backups))
	}
}

func TestWrite_BackupHoldsPreviousContent(t *testing.T) {
	s := newTestStore(t)
	s.SetClock(fixedClock(time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)))

	if err := s.Write(Workshops, doc{Items: []item{{ID: 1, Title: "before"}}}); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(s.Path(Workshops))

	if err := s.Write(Workshops, doc{Items: []item{{ID: 1, Title: "after"}}}); err != nil {
		t.Fatal(err)
	}

	backups, err := s.ListBackups(Workshops)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup; got %d", len(backups))
	}
	if backups[0].Name != "workshops_2026-01-25T10-00-00-000Z.json" {
		t.Fatalf("unexpected backup name %q", backups[0].Name)
	}
	got, _ := os.ReadFile(backups[0].Path)
	if string(got) != string(before) {
		t.Fatalf("backup should hold the pre-write content; got %q want %q", got, before)
	}
}

func TestWrite_BackupFailureAbortsWrite(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "data"), filepath.Join(dir, "blocked"))
	s.AutoCleanup = false
	if err := s.Write(About, map[string]string{"image": "a.jpg"}); err != nil {
		t.Fatal(err)
	}
	// a regular file where the backup directory should be
	if err := os.WriteFile(filepath.Join(dir, "blocked"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.Write(About, map[string]string{"image": "b.jpg"})
	if !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("expected ErrWriteFailure; got %v", err)
	}
	var out map[string]string
	if err := s.Read(About, &out); err != nil {
		t.Fatal(err)
	}
	if out["image"] != "a.jpg" {
		t.Fatalf("live document must be untouched; got %v", out)
	}
}

func TestRead_MissingDocument(t *testing.T) {
	s := newTestStore(t)
	var out doc
	err := s.Read(Settings, &out)
	if !errors.Is(err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure; got %v", err)
	}
}

func TestRead_InvalidJSON(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.DataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(Gallery), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out doc
	if err := s.Read(Gallery, &out); !errors.Is(err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure; got %v", err)
	}
}

func TestReadWrite_UnknownKey(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(Key("../etc"), doc{}); !errors.Is(err, ErrUnknownDocument) {
		t.Fatalf("expected ErrUnknownDocument on write; got %v", err)
	}
	var out doc
	if err := s.Read(Key("users"), &out); !errors.Is(err, ErrUnknownDocument) {
		t.Fatalf("expected ErrUnknownDocument on read; got %v", err)
	}
}

func TestNextID(t *testing.T) {
	id := func(it item) int { return it.ID }
	if got := NextID([]item{}, id); got != 1 {
		t.Fatalf("expected 1 for empty collection; got %d", got)
	}
	if got := NextID([]item{{ID: 3}, {ID: 7}, {ID: 1}}, id); got != 8 {
		t.Fatalf("expected 8; got %d", got)
	}
}

func TestConcurrentWrites_LastRewriteWinsAndBothBackupsExist(t *testing.T) {
	s := newTestStore(t)
	frozen := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return frozen })
	if err := s.Write(Paintings, doc{Items: []item{{ID: 1, Title: "seed"}}}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for _, title := range []string{"first", "second"} {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			if err := s.Write(Paintings, doc{Items: []item{{ID: 1, Title: title}}}); err != nil {
				t.Errorf("write %s: %v", title, err)
			}
		}(title)
	}
	wg.Wait()

	var out doc
	if err := s.Read(Paintings, &out); err != nil {
		t.Fatal(err)
	}
	if got := out.Items[0].Title; got != "first" && got != "second" {
		t.Fatalf("expected one of the racing writes to win; got %q", got)
	}
	backups, err := s.ListBackups(Paintings)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected a backup per write despite the frozen clock; got %d", len(backups))
	}
}
