package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store: "firestore", "mongo" or "memory".
	DocumentStore string `mapstructure:"DOCUMENT_STORE"`

	// Firebase configuration.
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration. An empty address disables the history cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Outlet history.
	HistoryCacheTTL      time.Duration `mapstructure:"HISTORY_CACHE_TTL"`
	HistoryDefaultMonths int           `mapstructure:"HISTORY_DEFAULT_MONTHS"`
	HistoryMaxMonths     int           `mapstructure:"HISTORY_MAX_MONTHS"`

	// Auth: "firebase", "jwt" or "none".
	AuthMode  string `mapstructure:"AUTH_MODE"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Collection names.
	CollectionQuickSales      string `mapstructure:"COLLECTION_QUICK_SALES"`
	CollectionSales           string `mapstructure:"COLLECTION_SALES"`
	CollectionEarlyAssessment string `mapstructure:"COLLECTION_EARLY_ASSESSMENT"`
	CollectionAttendance      string `mapstructure:"COLLECTION_ATTENDANCE"`
	CollectionOutlets         string `mapstructure:"COLLECTION_OUTLETS"`
}

var AppConfig Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DOCUMENT_STORE", "firestore")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "fieldtrack")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("HISTORY_CACHE_TTL", "5m")
	v.SetDefault("HISTORY_DEFAULT_MONTHS", 6)
	v.SetDefault("HISTORY_MAX_MONTHS", 24)
	v.SetDefault("AUTH_MODE", "firebase")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("COLLECTION_QUICK_SALES", "quickSalesReports")
	v.SetDefault("COLLECTION_SALES", "salesReports")
	v.SetDefault("COLLECTION_EARLY_ASSESSMENT", "earlyAssessmentReports")
	v.SetDefault("COLLECTION_ATTENDANCE", "attendanceReports")
	v.SetDefault("COLLECTION_OUTLETS", "outlets")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
