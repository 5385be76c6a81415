package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	DataDirectory string        `mapstructure:"data_directory" validate:"required"`
	Banks         BanksConfig   `mapstructure:"banks"`
	Storage       StorageConfig `mapstructure:"storage"`
	Quiz          QuizConfig    `mapstructure:"quiz"`
}

type BanksConfig struct {
	// Directory holds one "<subject>.json" bank file per subject.
	Directory string `mapstructure:"directory"`
	// BaseURL, when set, fetches banks from a static site instead of Directory.
	BaseURL       string `mapstructure:"base_url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
	// SubjectsFile optionally extends the built-in subject catalog.
	SubjectsFile string `mapstructure:"subjects_file"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=file sqlite"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type QuizConfig struct {
	DefaultDurationMinutes int  `mapstructure:"default_duration_minutes" validate:"gt=0"`
	DefaultQuestionCount   int  `mapstructure:"default_question_count" validate:"gt=0"`
	Randomize              bool `mapstructure:"randomize"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/prepdeck")
	}

	v.SetDefault("data_directory", "data")
	v.SetDefault("banks.directory", filepath.Join("data", "questions"))
	v.SetDefault("banks.retry_attempts", 3)
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.sqlite_path", filepath.Join("data", "prepdeck.db"))
	v.SetDefault("quiz.default_duration_minutes", 60)
	v.SetDefault("quiz.default_question_count", 50)
	v.SetDefault("quiz.randomize", true)

	if err := v.BindEnv("banks.base_url", "PREPDECK_BANKS_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind PREPDECK_BANKS_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	validate, trans, err := NewValidator()
	if err != nil {
		return nil, fmt.Errorf("config.NewValidator() > %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", TranslateError(err, trans))
	}

	return &cfg, nil
}
