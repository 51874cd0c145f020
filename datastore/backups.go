package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Backup names look like workshops_2026-01-25T10-00-00-123Z.json: an ISO
// timestamp with ':' and '.' replaced by '-', so name order is time order.
const isoMillis = "2006-01-02T15:04:05.000Z"

var (
	backupName = regexp.MustCompile(`^(.+)_(\d{4}-\d{2}-\d{2})T(\d{2})-(\d{2})-(\d{2})-(\d{3})Z\.json$`)
	hyphenate  = strings.NewReplacer(":", "-", ".", "-")
)

type Backup struct {
	Key       Key       `json:"key"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	Size      int64     `json:"size"`
}

// ParseBackupName splits a backup file name into its key and timestamp.
func ParseBackupName(name string) (Key, time.Time, bool) {
	m := backupName.FindStringSubmatch(name)
	if m == nil {
		return "", time.Time{}, false
	}
	stamp := fmt.Sprintf("%sT%s:%s:%s.%sZ", m[2], m[3], m[4], m[5], m[6])
	ts, err := time.Parse(isoMillis, stamp)
	if err != nil {
		return "", time.Time{}, false
	}
	return Key(m[1]), ts, true
}

// BackupFileName names the backup of key taken at the given instant.
func BackupFileName(key Key, at time.Time) string {
	return fmt.Sprintf("%s_%s.json", key, hyphenate.Replace(at.UTC().Format(isoMillis)))
}

// CreateBackup copies the current content of key into BackupDir and returns
// the backup path. When the document does not exist yet nothing is copied
// and the returned path is empty.
func (s *Store) CreateBackup(key Key) (string, error) {
	content, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return "", err
	}

	// Two writes inside the same millisecond would share a name; move the
	// later one forward so each write keeps its own snapshot.
	at := s.now().UTC()
	for attempt := 0; attempt < 1000; attempt++ {
		p := filepath.Join(s.BackupDir, BackupFileName(key, at))
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				at = at.Add(time.Millisecond)
				continue
			}
			return "", err
		}
		if _, err := f.Write(content); err != nil {
			f.Close()
			os.Remove(p)
			return "", err
		}
		if err := f.Close(); err != nil {
			os.Remove(p)
			return "", err
		}
		return p, nil
	}
	return "", fmt.Errorf("no free backup name for %s", key)
}

// ListBackups returns backups newest first. An empty key lists every document.
func (s *Store) ListBackups(key Key) ([]Backup, error) {
	entries, err := os.ReadDir(s.BackupDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Backup{}, nil
		}
		return nil, err
	}
	out := make([]Backup, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, ts, ok := ParseBackupName(e.Name())
		if !ok || (key != "" && k != key) {
			continue
		}
		b := Backup{Key: k, Name: e.Name(), Path: filepath.Join(s.BackupDir, e.Name()), CreatedAt: ts}
		if info, err := e.Info(); err == nil {
			b.Size = info.Size()
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// CleanupBackups keeps the Retain most recent backups per key and deletes
// the rest. Running it twice in a row deletes nothing the second time.
func (s *Store) CleanupBackups() error {
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(s.BackupDir)
	if err != nil {
		return err
	}

	byKey := map[Key][]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if k, _, ok := ParseBackupName(e.Name()); ok {
			byKey[k] = append(byKey[k], e.Name())
		}
	}

	retain := s.Retain
	if retain <= 0 {
		retain = DefaultRetain
	}

	var errs []error
	for _, names := range byKey {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
		for _, name := range names[min(retain, len(names)):] {
			if err := os.Remove(filepath.Join(s.BackupDir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// RestoreBackup makes the named backup the live document again. The restore
// is an ordinary write, so the content it replaces is itself backed up.
func (s *Store) RestoreBackup(name string) (Key, error) {
	name = filepath.Base(strings.TrimSpace(name))
	key, _, ok := ParseBackupName(name)
	if !ok {
		return "", fmt.Errorf("not a backup file name: %q", name)
	}
	if !key.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocument, key)
	}
	content, err := os.ReadFile(filepath.Join(s.BackupDir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, name, err)
	}
	if !json.Valid(content) {
		return "", fmt.Errorf("%w: %s: invalid JSON", ErrReadFailure, name)
	}
	return key, s.writeDocument(key, content)
}
