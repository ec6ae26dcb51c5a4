package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken        string
	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string
	DocDir          string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetRange:      os.Getenv("SHEET_RANGE"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		DocDir:          os.Getenv("DOC_DIR"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("config.Load: SPREADSHEET_ID is required")
	}

	if cfg.SheetRange == "" {
		cfg.SheetRange = "Registros!A:G"
	}

	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "credentials.json"
	}

	if cfg.DocDir == "" {
		cfg.DocDir = "doc_files"
	}

	return cfg, nil
}
