package config

import (
	"log"
	"os"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds process settings read from the environment.
type Config struct {
	Port    string
	GinMode string
	DBPath  string
	SeedDB  bool
}

// Load reads configuration from a .env file (if present) and the environment.
// Real environment variables win over .env entries.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),
		DBPath:  getEnv("DB_PATH", "pos.db"),
		SeedDB:  getEnv("SEED_DB", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the SQLite database and migrates all models.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
	return db
}
