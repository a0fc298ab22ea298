package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	StoreBackend  string
	DataPath      string
	DBPath        string
	PublicPath    string
	AdminUsername string
	AdminPassword string
	SessionMode   string
	SessionSecret string
	SessionTTL    string
	MaxUploadMB   int64
	LogLevel      string
	LogFile       string
	Env           string
}

func Load() *Config {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		StoreBackend:  getEnv("STORE_BACKEND", "file"),
		DataPath:      getEnv("DATA_PATH", "./data"),
		DBPath:        getEnv("DB_PATH", "./data/camioneros.db"),
		PublicPath:    getEnv("PUBLIC_PATH", "./public"),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SessionMode:   getEnv("SESSION_MODE", "presence"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnv("SESSION_TTL", "24h"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		Env:           getEnv("ENV", "development"),
	}
}

// Production reports whether the session cookie should carry the Secure flag.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int64) int64 {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
