package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string         `yaml:"env" env:"APP_ENV" env-default:"development"`
	StoragePath string         `yaml:"storage_path" env:"STORAGE_PATH" env-default:"data/records.db"`
	HTTP        HTTPConfig     `yaml:"http"`
	Webhook     WebhookConfig  `yaml:"webhook"`
	Overtime    OvertimeConfig `yaml:"overtime"`
	Calendar    CalendarConfig `yaml:"calendar"`
	Static      StaticConfig   `yaml:"static"`
	Log         LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Host            string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int    `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout     int    `yaml:"read_timeout" env-default:"15"`
	WriteTimeout    int    `yaml:"write_timeout" env-default:"15"`
	IdleTimeout     int    `yaml:"idle_timeout" env-default:"60"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" env-default:"5"`
}

type WebhookConfig struct {
	Secret string `yaml:"secret" env:"API_SECRET" env-default:"dev_secret"`
}

// OvertimeConfig carries the classification rule: clock-outs at or after
// CutoffHour local time (fixed UTC offset) count as overtime.
type OvertimeConfig struct {
	CutoffHour    int `yaml:"cutoff_hour" env:"OVERTIME_CUTOFF_HOUR" env-default:"21"`
	TZOffsetHours int `yaml:"tz_offset_hours" env:"TZ_OFFSET_HOURS" env-default:"8"`
}

type CalendarConfig struct {
	DatasetFile  string `yaml:"dataset_file" env:"CALENDAR_DATASET_FILE"`
	RemoteURL    string `yaml:"remote_url" env:"CALENDAR_REMOTE_URL"`
	FetchTimeout int    `yaml:"fetch_timeout" env-default:"10"`
}

type StaticConfig struct {
	Enabled bool   `yaml:"enabled" env:"STATIC_ENABLED" env-default:"false"`
	Dir     string `yaml:"dir" env:"STATIC_DIR" env-default:"client/dist"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &cfg, nil
}
