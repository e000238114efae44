package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider  string // "gemini" or "groq"
	GeminiAPIKey string
	GroqAPIKey   string
	GroqModel    string
	WhisperURL   string
	StoreBackend string // "sqlite" or "file"
	DatabaseURL  string
	DataDir      string
	UploadDir    string
	HTTPPort     string
	LogLevel     string
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		LLMProvider:  getEnv("LLM_PROVIDER", "groq"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		GroqModel:    getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		WhisperURL:   getEnv("WHISPER_URL", ""),
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DatabaseURL:  getEnv("DATABASE_URL", "voice_catalog.db"),
		DataDir:      getEnv("DATA_DIR", "data"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	switch AppConfig.LLMProvider {
	case "gemini":
		if AppConfig.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required when LLM_PROVIDER=gemini")
		}
	case "groq":
		if AppConfig.GroqAPIKey == "" {
			log.Fatal("GROQ_API_KEY environment variable is required when LLM_PROVIDER=groq")
		}
	default:
		log.Fatalf("Unknown LLM_PROVIDER %q (expected gemini or groq)", AppConfig.LLMProvider)
	}

	if AppConfig.WhisperURL == "" {
		log.Fatal("WHISPER_URL environment variable is required")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
