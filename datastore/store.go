package datastore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultRetain is how many backups per key survive a cleanup.
const DefaultRetain = 10

// Store persists named JSON documents in DataDir and snapshots the previous
// content of a document into BackupDir before every overwrite.
//
// There is no locking: concurrent read-modify-write cycles on the same key
// race and the last rewrite wins. Every losing write still leaves a backup.
type Store struct {
	DataDir   string
	BackupDir string

	// Retain is the number of backups kept per key by CleanupBackups.
	Retain int
	// AutoCleanup runs CleanupBackups after every successful Write.
	AutoCleanup bool

	now func() time.Time
}

// New returns a store rooted at dataDir. An empty backupDir means dataDir/backups.
func New(dataDir, backupDir string) *Store {
	if backupDir == "" {
		backupDir = filepath.Join(dataDir, "backups")
	}
	return &Store{
		DataDir:     dataDir,
		BackupDir:   backupDir,
		Retain:      DefaultRetain,
		AutoCleanup: true,
		now:         time.Now,
	}
}

// SetClock replaces the wall clock used for backup names.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Path is the file holding the live document for key.
func (s *Store) Path(key Key) string {
	return filepath.Join(s.DataDir, key.FileName())
}

// Read loads the document for key into v.
func (s *Store) Read(key Key, v any) error {
	b, err := s.ReadRaw(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadFailure, key, err)
	}
	return nil
}

// ReadRaw returns the on-disk bytes of the document for key.
func (s *Store) ReadRaw(key Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, key)
	}
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailure, key, err)
	}
	return b, nil
}

// Write backs up the current document for key and replaces it with v,
// encoded as two-space indented JSON with a trailing newline.
func (s *Store) Write(key Key, v any) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDocument, key)
	}
	content, err := encode(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, key, err)
	}
	return s.writeDocument(key, content)
}

func (s *Store) writeDocument(key Key, content []byte) error {
	if _, err := s.CreateBackup(key); err != nil {
		return fmt.Errorf("%w: %s: backup: %w", ErrWriteFailure, key, err)
	}

	if err := os.MkdirAll(s.DataDir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, key, err)
	}
	if err := writeAtomic(s.Path(key), content); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, key, err)
	}

	if s.AutoCleanup {
		if err := s.CleanupBackups(); err != nil {
			log.Printf("⚠️ backup cleanup after writing %s: %v", key, err)
		}
	}
	return nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Encode terminates the document with a newline.
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes to a sibling temp file and renames it over path, so a
// reader sees either the old or the new document.
func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Exists reports whether the document for key is present on disk.
func (s *Store) Exists(key Key) (bool, int64, error) {
	info, err := os.Stat(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// NextID returns 1 for an empty collection, otherwise the largest id plus one.
func NextID[T any](items []T, id func(T) int) int {
	if len(items) == 0 {
		return 1
	}
	max := id(items[0])
	for _, it := range items[1:] {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
