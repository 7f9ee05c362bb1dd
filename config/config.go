package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Hariom8799/nutrisnap/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is the process configuration, loaded once in main and passed down.
type Config struct {
	Port      string
	Env       string // "development" | "production"
	LogLevel  string
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	ModelURL string // external food classifier base URL

	NutritionixAppID  string
	NutritionixAppKey string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: getEnv("JWT_SECRET", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "nutrisnap"),
		DBPort:     getEnv("DB_PORT", "5432"),

		ModelURL: getEnv("MODEL_URL", "https://food-recognition-model.onrender.com"),

		NutritionixAppID:  getEnv("NUTRITIONIX_APP_ID", ""),
		NutritionixAppKey: getEnv("NUTRITIONIX_API_KEY", ""),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		CloudFrontURL: getEnv("CLOUDFRONT_URL", ""),
	}
}

// Production reports whether cookies should be marked Secure.
func (c *Config) Production() bool { return c.Env == "production" }

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// InitDB opens the Postgres connection and migrates the schema. The handle
// is returned to the caller and injected into services; no package-level
// connection state is kept.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodLog{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}

	return db, nil
}
