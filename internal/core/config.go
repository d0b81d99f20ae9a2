package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SinkTypeGoogle   = "google"
	SinkTypeWorkbook = "workbook"

	JournalTypeSQLite = "sqlite"
	JournalTypeNone   = "none"
)

type StorageConfig struct {
	UploadDir      string `yaml:"uploadDir"`
	ThumbnailWidth int    `yaml:"thumbnailWidth"`
}

type SheetConfig struct {
	Type            string `yaml:"type"`
	SpreadsheetID   string `yaml:"spreadsheetId"`
	AppendRange     string `yaml:"appendRange"`
	CredentialsFile string `yaml:"credentialsFile"`
	WorkbookPath    string `yaml:"workbookPath"`
}

type JournalConfig struct {
	Type             string `yaml:"type"`
	ConnectionString string `yaml:"connectionString"`
}

type RecentConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Size    int    `yaml:"size"`
}

type ServiceConfig struct {
	Port          int           `yaml:"port"`
	PublicBaseURL string        `yaml:"publicBaseURL"`
	Storage       StorageConfig `yaml:"storage"`
	Sheet         SheetConfig   `yaml:"sheet"`
	Journal       JournalConfig `yaml:"journal"`
	Recent        RecentConfig  `yaml:"recent"`
}

// LoadConfig loads configuration from the specified YAML file
func LoadConfig(configPath string) (*ServiceConfig, error) {
	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Parse YAML
	var config ServiceConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *ServiceConfig) {
	if config.Port == 0 {
		config.Port = 3000
	}
	if config.Storage.UploadDir == "" {
		config.Storage.UploadDir = "uploads"
	}
	if config.Storage.ThumbnailWidth == 0 {
		config.Storage.ThumbnailWidth = 320
	}
	if config.Sheet.Type == "" {
		config.Sheet.Type = SinkTypeGoogle
	}
	if config.Sheet.AppendRange == "" {
		config.Sheet.AppendRange = "Sheet1!A:P"
	}
	if config.Sheet.CredentialsFile == "" {
		config.Sheet.CredentialsFile = "service-account.json"
	}
	if config.Journal.Type == "" {
		config.Journal.Type = JournalTypeNone
	}
	if config.Recent.Size == 0 {
		config.Recent.Size = 50
	}
}

func validateConfig(config *ServiceConfig) error {
	switch config.Sheet.Type {
	case SinkTypeGoogle:
		if config.Sheet.SpreadsheetID == "" {
			return fmt.Errorf("sheet.spreadsheetId must be set for sink type %q", SinkTypeGoogle)
		}
	case SinkTypeWorkbook:
		if config.Sheet.WorkbookPath == "" {
			return fmt.Errorf("sheet.workbookPath must be set for sink type %q", SinkTypeWorkbook)
		}
	default:
		return fmt.Errorf("unsupported sheet sink type: %s", config.Sheet.Type)
	}

	switch config.Journal.Type {
	case JournalTypeNone:
	case JournalTypeSQLite:
		if config.Journal.ConnectionString == "" {
			return fmt.Errorf("journal.connectionString must be set for journal type %q", JournalTypeSQLite)
		}
	default:
		return fmt.Errorf("unsupported journal type: %s", config.Journal.Type)
	}

	if config.Recent.Enabled && config.Recent.Address == "" {
		return fmt.Errorf("recent.address must be set when the recent log is enabled")
	}

	if config.Storage.ThumbnailWidth < 0 {
		return fmt.Errorf("storage.thumbnailWidth must not be negative, got %d", config.Storage.ThumbnailWidth)
	}

	return nil
}
