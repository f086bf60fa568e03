package database

import (
	"fmt"
	"log"

	"artflow-backend/config"
	"artflow-backend/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Docs is the process-wide document store handle. Handlers go through
// it for every read and write; tests swap in store.NewMemory().
var Docs store.Store

func InitDB() {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(&store.Document{}); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	Docs = store.NewPostgres(DB)

	fmt.Println("✅ Connected and migrated successfully")
}
