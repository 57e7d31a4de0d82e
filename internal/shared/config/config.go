package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// Generative AI
	AIProvider   string // gemini | openai
	GeminiAPIKey string
	OpenAIKey    string
	TextModel    string
	ImageModel   string
	SpeechModel  string

	// Merchant defaults
	StoreName   string
	CountryCode string // substituted for a leading "0" in phone numbers
	AdminPhone  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		AIProvider:   os.Getenv("AI_PROVIDER"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		TextModel:    os.Getenv("AI_TEXT_MODEL"),
		ImageModel:   os.Getenv("AI_IMAGE_MODEL"),
		SpeechModel:  os.Getenv("AI_SPEECH_MODEL"),
		StoreName:    os.Getenv("STORE_NAME"),
		CountryCode:  os.Getenv("COUNTRY_CODE"),
		AdminPhone:   os.Getenv("ADMIN_PHONE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.AIProvider == "" {
		cfg.AIProvider = "gemini"
	}
	if cfg.StoreName == "" {
		cfg.StoreName = "My Awesome Store"
	}
	if cfg.CountryCode == "" {
		// Morocco is the launch market
		cfg.CountryCode = "212"
	}

	return cfg
}
