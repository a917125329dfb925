// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Studio    StudioConfig    `toml:"studio"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Storage   StorageConfig   `toml:"storage"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Results   ResultsConfig   `toml:"results"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения PostgreSQL
func (c DatabaseConfig) DSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslmode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StudioConfig параметры студии
// Timezone задает часовой пояс, в котором считаются границы дня
// для блокировок и расчета вместимости (например "Asia/Dubai")
type StudioConfig struct {
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Timezone string `toml:"timezone"`
	BaseURL  string `toml:"base_url"`
}

// Location загружает часовой пояс студии
func (c StudioConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, fmt.Errorf("config: studio.timezone is required")
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid studio.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SMTPConfig параметры отправки почты
// При enabled = false письма только логируются
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// StorageConfig параметры файлового хранилища вложений
type StorageConfig struct {
	UploadDir string `toml:"upload_dir"`
}

// RateLimitConfig параметры ограничения частоты запросов для публичных эндпоинтов
type RateLimitConfig struct {
	RPS        float64 `toml:"rps"`
	Burst      int     `toml:"burst"`
	TTLMinutes int     `toml:"ttl_minutes"`
}

// ResultsConfig параметры доступа к результатам съемки
type ResultsConfig struct {
	TokenSecret     string `toml:"token_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if _, err := c.Studio.Location(); err != nil {
		return err
	}
	if c.Results.TokenSecret == "" {
		return fmt.Errorf("config: results.token_secret is required")
	}
	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.From == "") {
		return fmt.Errorf("config: smtp.host and smtp.from are required when smtp is enabled")
	}
	return nil
}
