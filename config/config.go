package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	CORS     CORSConfig
	S3       S3Config
	Uploads  UploadConfig
	Sitemap  SitemapConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
	BaseURL     string // public site URL, used for sitemap entries
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

type UploadConfig struct {
	// Backend selects the file storage implementation: "s3" or "local".
	Backend      string
	LocalDir     string
	LocalBaseURL string
	MaxImageSize int64
	MaxVideoSize int64
	MaxPDFSize   int64
}

type SitemapConfig struct {
	// Cron expression for periodic sitemap regeneration.
	RefreshSchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			BaseURL:     getEnv("SITE_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "coimpres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "your-secret-key"),
			TTL:        parseDuration(getEnv("SESSION_TTL", "12h"), 12*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "admin_session"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "eu-south-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", "coimpres-uploads"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
		Uploads: UploadConfig{
			Backend:      getEnv("UPLOAD_BACKEND", "local"),
			LocalDir:     getEnv("UPLOAD_LOCAL_DIR", "./uploads"),
			LocalBaseURL: getEnv("UPLOAD_LOCAL_BASE_URL", "/uploads"),
			MaxImageSize: parseInt64(getEnv("UPLOAD_MAX_IMAGE_SIZE", "10485760"), 10<<20),
			MaxVideoSize: parseInt64(getEnv("UPLOAD_MAX_VIDEO_SIZE", "209715200"), 200<<20),
			MaxPDFSize:   parseInt64(getEnv("UPLOAD_MAX_PDF_SIZE", "26214400"), 25<<20),
		},
		Sitemap: SitemapConfig{
			RefreshSchedule: getEnv("SITEMAP_REFRESH_SCHEDULE", "0 4 * * *"),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return value
}

func parseInt64(s string, fallback int64) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
