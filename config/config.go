package config

import (
	"log"
	"os"

	"foodie-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — set by InitDB once .env has been loaded
var JWTSecret []byte

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB loads configuration, opens the sqlite store and migrates all
// models. Any failure here is fatal: the process must not serve requests
// without its store.
func InitDB() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "foodie_super_secret_2024"))

	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "foodie.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.FoodItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
