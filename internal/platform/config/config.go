package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	fileName    = "najah.yaml"
	envFileName = ".env"
)

var validate = validator.New()

// Config is the root application configuration.
type Config struct {
	DataDir    string `yaml:"-"`
	DBPath     string `yaml:"-"`
	ConfigPath string `yaml:"-"`

	Timer TimerConfig `yaml:"timer"`
	Tutor TutorConfig `yaml:"tutor"`
	Exam  ExamConfig  `yaml:"exam"`
	Log   LogConfig   `yaml:"log"`
}

// TimerConfig holds focus timer settings.
type TimerConfig struct {
	WorkDuration  time.Duration `yaml:"work_duration"  env:"NAJAH_TIMER_WORK"   env-default:"25m"`
	BreakDuration time.Duration `yaml:"break_duration" env:"NAJAH_TIMER_BREAK"  env-default:"5m"`
	Notify        bool          `yaml:"notify"         env:"NAJAH_TIMER_NOTIFY" env-default:"true"`
	DesktopNotify bool          `yaml:"desktop_notify" env:"NAJAH_TIMER_DBUS"   env-default:"false"`
}

// TutorConfig holds the generative-language relay settings.
type TutorConfig struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model"   env:"NAJAH_TUTOR_MODEL"   env-default:"gemini-3-pro-preview"`
	Timeout time.Duration `yaml:"timeout" env:"NAJAH_TUTOR_TIMEOUT" env-default:"60s"`
}

// ExamLayout is the local date-time format of exam.date.
const ExamLayout = "2006-01-02T15:04:05"

// ExamConfig holds the BAC exam the dashboard counts down to.
type ExamConfig struct {
	Date string `yaml:"date" env:"NAJAH_BAC_EXAM" env-default:"2025-06-10T08:00:00"`
}

// At parses Date in local time.
func (e ExamConfig) At() (time.Time, error) {
	return time.ParseInLocation(ExamLayout, e.Date, time.Local)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NAJAH_LOG_LEVEL"  env-default:"warn" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" env:"NAJAH_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// New loads configuration for the given data directory.
// Priority: ENV > <dataDir>/.env > <dataDir>/najah.yaml > defaults.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	// .env never overrides variables already set in the process.
	envPath := filepath.Join(dataDir, envFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envPath, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: stat %s: %w", envPath, err)
	}
	cfg := Config{}
	path := filepath.Join(dataDir, fileName)
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	cfg.DataDir = dataDir
	cfg.DBPath = filepath.Join(dataDir, "najah.db")
	cfg.ConfigPath = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks duration bounds by hand and enum fields through their
// validate tags.
func (c Config) Validate() error {
	if c.Timer.WorkDuration < time.Second {
		return fmt.Errorf("timer.work_duration must be at least 1s, got %s", c.Timer.WorkDuration)
	}
	if c.Timer.BreakDuration < time.Second {
		return fmt.Errorf("timer.break_duration must be at least 1s, got %s", c.Timer.BreakDuration)
	}
	if c.Tutor.Timeout <= 0 {
		return fmt.Errorf("tutor.timeout must be positive")
	}
	if _, err := c.Exam.At(); err != nil {
		return fmt.Errorf("exam.date must look like %s: %w", ExamLayout, err)
	}
	if err := validate.Struct(c.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
