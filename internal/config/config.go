package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Render  RenderConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RenderConfig controls the external Poppler toolchain used to rasterize
// uploaded PDFs. An empty PopplerPath means the binaries are looked up on PATH.
type RenderConfig struct {
	PopplerPath string
	DPI         int
	JPEGQuality int
}

type StorageConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			// GOOGLE_API_KEY is still honoured for existing .env files.
			APIKey: getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Render: RenderConfig{
			PopplerPath: getEnv("POPPLER_PATH", ""),
			DPI:         getEnvAsInt("RENDER_DPI", 150),
			JPEGQuality: getEnvAsInt("JPEG_QUALITY", 90),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
