package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownStorageDriver        = errors.New("unknown storage driver")
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`             // current application environment (local, dev, production etc)
	LogLevel         string  `mapstructure:"log_level"`       // overrides the environment's default log level when set
	TelegramAPIToken string  `mapstructure:"-"`               // Telegram API token loaded from environment
	WordsJSONPath    string  `mapstructure:"words_json_path"` // path to the vocabulary dataset
	Dataset          Dataset `mapstructure:"dataset"`         // dataset loading policy
	Exam             Exam    `mapstructure:"exam"`            // exam engine parameters
	Storage          Storage `mapstructure:"storage"`         // persistence backend selection
	DB               DB      `mapstructure:"database"`        // database configuration section
}

// Dataset controls how the word list is loaded.
type Dataset struct {
	FallbackPlaceholder bool `mapstructure:"fallback_placeholder"` // use a built-in placeholder when the dataset fails to load
}

// Exam contains quiz engine parameters.
type Exam struct {
	QuestionCount  int           `mapstructure:"question_count"`  // questions per exam
	RotationBuffer int           `mapstructure:"rotation_buffer"` // rotation resets when fewer than this many unused words remain
	IdleTTL        time.Duration `mapstructure:"idle_ttl"`        // in-memory exams idle longer than this are discarded
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`  // how often idle exams are swept
}

// Storage selects the persistence backend.
type Storage struct {
	Driver     string `mapstructure:"driver"`      // sqlite, postgres or memory
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite driver
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, real environment wins anyway.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "")
	v.SetDefault("words_json_path", "assets/data/word.json")
	v.SetDefault("dataset.fallback_placeholder", false)
	v.SetDefault("exam.question_count", 10)
	v.SetDefault("exam.rotation_buffer", 5)
	v.SetDefault("exam.idle_ttl", "30m")
	v.SetDefault("exam.sweep_interval", "5m")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "vocab-master.db")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		cfg.DB.URL = v.GetString("database_url")
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	if cfg.Exam.QuestionCount <= 0 {
		return nil, fmt.Errorf("exam.question_count must be positive, got %d", cfg.Exam.QuestionCount)
	}
	if cfg.Exam.RotationBuffer < 0 {
		return nil, fmt.Errorf("exam.rotation_buffer must not be negative, got %d", cfg.Exam.RotationBuffer)
	}

	return &cfg, nil
}
