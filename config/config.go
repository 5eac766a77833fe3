package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string
	WebhookURL        string
	Port              string
	SpreadsheetID     string
	GoogleCredsJSON   string
	PriceXLSXPath     string
	AllowEmptySecrets bool
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		WebhookURL:        strings.TrimSpace(os.Getenv("WEBHOOK_URL")),
		Port:              strings.TrimSpace(os.Getenv("PORT")),
		SpreadsheetID:     strings.TrimSpace(os.Getenv("SPREADSHEET_ID")),
		GoogleCredsJSON:   os.Getenv("GOOGLE_CREDS"),
		PriceXLSXPath:     strings.TrimSpace(os.Getenv("PRICE_XLSX_PATH")),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	if strings.TrimSpace(config.GoogleCredsJSON) == "" {
		if path := strings.TrimSpace(os.Getenv("GOOGLE_CREDS_FILE")); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("GOOGLE_CREDS_FILE o'qilmadi: %w", err)
			}
			config.GoogleCredsJSON = string(raw)
		}
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	// Validatsiya
	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
		}
		if config.WebhookURL == "" {
			return nil, fmt.Errorf("WEBHOOK_URL environment variable bo'sh")
		}
		if !config.HasGoogleSource() && config.PriceXLSXPath == "" {
			return nil, fmt.Errorf("narx manbasi yo'q: GOOGLE_CREDS+SPREADSHEET_ID yoki PRICE_XLSX_PATH kerak")
		}
	}

	return config, nil
}

// HasGoogleSource Google Sheets manbasi sozlanganmi
func (c *Config) HasGoogleSource() bool {
	return strings.TrimSpace(c.GoogleCredsJSON) != "" && c.SpreadsheetID != ""
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
