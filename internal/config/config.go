package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// MaxNameMaxLength is the largest configurable task name length.
const MaxNameMaxLength = 64 * 1024

// Config holds all configuration options for hachi
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Ui          UiConfig          `yaml:"ui"`
	Validation  ValidationConfig  `yaml:"validation"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend        string `yaml:"backend" env:"HACHI_STORAGE_BACKEND"`
	Dir            string `yaml:"dir" env:"HACHI_DATA_DIR"`
	DataFile       string `yaml:"data_file" env:"HACHI_DATA_FILE"`
	DBFile         string `yaml:"db_file" env:"HACHI_DB_FILE"`
	DirPermissions uint32 `yaml:"dir_permissions" env:"HACHI_DIR_PERMISSIONS"`
}

// UiConfig holds console configuration
type UiConfig struct {
	BotName      string `yaml:"bot_name" env:"HACHI_BOT_NAME"`
	Prompt       string `yaml:"prompt" env:"HACHI_PROMPT"`
	DividerWidth int    `yaml:"divider_width" env:"HACHI_DIVIDER_WIDTH"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMaxLength int `yaml:"name_max_length" env:"HACHI_NAME_MAX_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"HACHI_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"HACHI_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendFile,
			Dir:            filepath.Join(homeDir, ".hachi"),
			DataFile:       "hachi.txt",
			DBFile:         "hachi.db",
			DirPermissions: 0755,
		},
		Ui: UiConfig{
			BotName:      "Hachi",
			Prompt:       "> ",
			DividerWidth: 60,
		},
		Validation: ValidationConfig{
			NameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 10 * time.Second,
			Verbose: false,
		},
	}
}

// GetDataFilePath returns the full path to the task file
func (c *Config) GetDataFilePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DataFile)
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFile)
}

// GetDirPermissions returns the mode used for created data directories
func (c *Config) GetDirPermissions() os.FileMode {
	return os.FileMode(c.Storage.DirPermissions)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("HACHI_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("HACHI_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if file := os.Getenv("HACHI_DATA_FILE"); file != "" {
		c.Storage.DataFile = file
	}
	if file := os.Getenv("HACHI_DB_FILE"); file != "" {
		c.Storage.DBFile = file
	}
	if perms := os.Getenv("HACHI_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Ui configuration
	if name := os.Getenv("HACHI_BOT_NAME"); name != "" {
		c.Ui.BotName = name
	}
	if prompt, ok := os.LookupEnv("HACHI_PROMPT"); ok {
		c.Ui.Prompt = prompt
	}
	if width := os.Getenv("HACHI_DIVIDER_WIDTH"); width != "" {
		c.Ui.DividerWidth = ParseIntWithFallback(width, c.Ui.DividerWidth)
	}

	// Validation configuration
	if maxLen := os.Getenv("HACHI_NAME_MAX_LENGTH"); maxLen != "" {
		c.Validation.NameMaxLength = ParseIntWithFallback(maxLen, c.Validation.NameMaxLength)
	}

	// Application configuration
	if timeout := os.Getenv("HACHI_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("HACHI_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.DataFile == "" {
			return &ConfigError{Field: "storage.data_file", Message: "data file cannot be empty"}
		}
	case BackendSQLite:
		if c.Storage.DBFile == "" {
			return &ConfigError{Field: "storage.db_file", Message: "database file cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"file\" or \"sqlite\""}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be between 1 and 0777"}
	}

	// Validate ui configuration
	if c.Ui.BotName == "" {
		return &ConfigError{Field: "ui.bot_name", Message: "bot name cannot be empty"}
	}
	if c.Ui.DividerWidth < 1 {
		return &ConfigError{Field: "ui.divider_width", Message: "divider width must be at least 1"}
	}

	// Validate validation configuration
	if c.Validation.NameMaxLength < 1 || c.Validation.NameMaxLength > MaxNameMaxLength {
		return &ConfigError{Field: "validation.name_max_length", Message: fmt.Sprintf("name maximum length must be between 1 and %d", MaxNameMaxLength)}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
