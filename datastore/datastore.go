package datastore

import (
	"fmt"
	"log"
	"os"
)

// Docs is the process-wide document store used by the HTTP handlers.
var Docs *Store

func Init(dataDir, backupDir string) {
	s := New(dataDir, backupDir)
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		log.Fatal("❌ Failed to prepare data directory:", err)
	}
	Docs = s

	for _, k := range AllKeys {
		if ok, _, err := s.Exists(k); err == nil && !ok {
			log.Printf("⚠️ %s not found, defaults will be served", s.Path(k))
		}
	}

	fmt.Println("✅ Document store ready at", s.DataDir)
}
