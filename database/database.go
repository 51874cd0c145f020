package database

import (
	"fmt"
	"log"

	"doris-art/internal/domain/inquiries"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB stays nil when no ledger database is configured.
var DB *gorm.DB

// InitDB connects the inquiry ledger. It is a no-op for an empty dsn.
func InitDB(dsn string) {
	if dsn == "" {
		log.Println("ℹ️ DB_URL not set, inquiry ledger disabled")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(&inquiries.Inquiry{}); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
