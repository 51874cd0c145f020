package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"doris-art/datastore"

	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestDotenvLine(t *testing.T) {
	got := dotenvLine("ADMIN_PASSWORD_HASH", "$2a$12$abc")
	if got != "ADMIN_PASSWORD_HASH='$2a$12$abc'" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestNewSessionSecret(t *testing.T) {
	a, err := newSessionSecret()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := newSessionSecret()
	if len(a) != 64 || a == b {
		t.Fatalf("expected two distinct 64-char secrets; got %q %q", a, b)
	}
}

func TestHashPassword(t *testing.T) {
	out := run(t, "hash-password", "Zobotrebec05")
	var hash string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Hash: ") {
			hash = strings.TrimPrefix(line, "Hash: ")
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("Zobotrebec05")); err != nil {
		t.Fatalf("hash does not verify: %v\n%s", err, out)
	}
	if cost, _ := bcrypt.Cost([]byte(hash)); cost != passwordCost {
		t.Fatalf("expected cost %d; got %d", passwordCost, cost)
	}
	if !strings.Contains(out, "ADMIN_SESSION_SECRET='") {
		t.Fatalf("missing session secret line:\n%s", out)
	}
}

func TestDocsAndBackups(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := datastore.New(dir, "")
	for _, img := range []string{"a.jpg", "b.jpg"} {
		if err := s.Write(datastore.About, map[string]string{"image": img}); err != nil {
			t.Fatal(err)
		}
	}

	out := run(t, "docs", "show", "about", "--data-dir", dir)
	if !strings.Contains(out, `"image": "b.jpg"`) {
		t.Fatalf("unexpected document:\n%s", out)
	}

	out = run(t, "docs", "list", "--data-dir", dir)
	if !strings.Contains(out, "about.json") || !strings.Contains(out, "wall-paintings.json") {
		t.Fatalf("unexpected docs list:\n%s", out)
	}

	out = run(t, "backups", "list", "--key", "about", "--json", "--data-dir", dir)
	if !strings.Contains(out, `"key": "about"`) {
		t.Fatalf("unexpected backups list:\n%s", out)
	}
	backups, _ := s.ListBackups(datastore.About)

	run(t, "backups", "restore", backups[0].Name, "--data-dir", dir)
	var doc map[string]string
	if err := s.Read(datastore.About, &doc); err != nil || doc["image"] != "a.jpg" {
		t.Fatalf("restore did not apply: %v %v", doc, err)
	}

	out = run(t, "backups", "cleanup", "--data-dir", dir)
	if !strings.Contains(out, "removed 0 backup(s)") {
		t.Fatalf("unexpected cleanup output %q", out)
	}
}
