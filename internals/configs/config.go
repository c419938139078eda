package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the API. Values come from the
// process environment (optionally seeded from a .env file).
type Config struct {
	Port        string
	Env         string
	BaseURL     string
	CorsOrigins []string

	DatabaseURL string

	JWTSecret        string
	JWTExpire        time.Duration
	JWTCookieExpire  time.Duration
	RequestTimeout   time.Duration
	ResetTokenExpire time.Duration

	MaxFileUpload     int64
	MaxImageDimension int
	FileUploadPath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	KafkaBrokers            []string
	KafkaPasswordResetTopic string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	ResetTokenCleanupCron string
	SeedDir               string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running in Railway, using system environment")
	}
}

// Load builds a Config from the environment, applying defaults for every
// missing value.
func Load() Config {
	cfg := Config{
		Port:        GetEnv("PORT", "5000"),
		Env:         GetEnv("ENV", "development"),
		BaseURL:     strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:5000"), "/"),
		CorsOrigins: splitList(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		DatabaseURL: databaseURL(),

		JWTSecret:        GetEnv("JWT_SECRET"),
		JWTExpire:        GetEnvDuration("JWT_EXPIRE", 30*24*time.Hour),
		JWTCookieExpire:  time.Duration(GetEnvInt("JWT_COOKIE_EXPIRE", 30)) * 24 * time.Hour,
		RequestTimeout:   GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		ResetTokenExpire: GetEnvDuration("RESET_TOKEN_EXPIRE", 10*time.Minute),

		MaxFileUpload:     int64(GetEnvInt("MAX_FILE_UPLOAD", 1000000)),
		MaxImageDimension: GetEnvInt("MAX_IMAGE_DIMENSION", 1600),
		FileUploadPath:    GetEnv("FILE_UPLOAD_PATH", "./public/uploads"),

		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisDB:       GetEnvInt("REDIS_DB", 0),
		UserCacheTTL:  GetEnvDuration("USER_CACHE_TTL", 5*time.Minute),

		KafkaBrokers:            splitList(GetEnv("KAFKA_BROKERS")),
		KafkaPasswordResetTopic: GetEnv("KAFKA_TOPIC_PASSWORD_RESET", "auth.password_reset_requested"),

		S3Bucket:    GetEnv("S3_BUCKET"),
		S3Region:    GetEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  GetEnv("S3_ENDPOINT"),
		S3AccessKey: GetEnv("S3_ACCESS_KEY"),
		S3SecretKey: GetEnv("S3_SECRET_KEY"),

		ResetTokenCleanupCron: GetEnv("RESET_TOKEN_CLEANUP_CRON", "@hourly"),
		SeedDir:               GetEnv("SEED_DIR", "internals/seeds"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set")
	} else {
		log.Println("[INFO] JWT_SECRET loaded")
	}
	return cfg
}

// IsProduction reports whether cookies must be marked Secure.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

// GetEnvDuration accepts Go durations ("15m", "720h"); a bare integer is
// read as seconds.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("[WARN] %s=%q is not a duration, using %s", key, v, def)
	return def
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func databaseURL() string {
	if dsn := GetEnv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=devcamper",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "devcamper"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
