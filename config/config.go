package config

import (
	"log"
	"os"

	"food-delivery-app/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SessionSecret signs session tokens — read from env or fallback
var SessionSecret = []byte(getEnv("SESSION_SECRET", "food_delivery_session_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens an in-memory SQLite database and loads the compiled-in
// catalog. Nothing is written to disk: catalog data lives for the
// process lifetime only, exactly like the cart state it serves.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open in-memory database:", err)
	}

	err = DB.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate catalog schema:", err)
	}

	if err := SeedCatalog(DB); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	log.Println("✅ In-memory catalog loaded")
}
