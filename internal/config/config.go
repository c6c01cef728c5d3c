package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ErrNoToken возвращается, если не задан обязательный токен бота.
var ErrNoToken = errors.New("не задан BOT_TOKEN")

// fallbackBaseURL используется, когда внешний URL не удалось определить.
const fallbackBaseURL = "https://your-app.onrender.com"

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Path       string `yaml:"path" env:"LOG_PATH"`
	ErrorPath  string `yaml:"errorpath" env:"LOG_ERROR_PATH"`
	MaxSize    int    `yaml:"maxsize"`
	MaxBackups int    `yaml:"maxbackups"`
	MaxAge     int    `yaml:"maxage"`
	Compress   bool   `yaml:"compress"`
}

type ServerConfig struct {
	Port      int    `yaml:"port" env:"PORT"`
	StaticDir string `yaml:"staticdir" env:"STATIC_DIR"`
}

type BotConfig struct {
	Token             string `yaml:"token" env:"BOT_TOKEN"`
	BaseURL           string `yaml:"baseurl" env:"BASE_URL"`
	RenderExternalURL string `yaml:"-" env:"RENDER_EXTERNAL_URL"`
	RenderServiceName string `yaml:"-" env:"RENDER_SERVICE_NAME"`
	HelpEnabled       bool   `yaml:"helpenabled" env:"HELP_ENABLED"`
}

// Config представляет структуру конфигурации
type Config struct {
	Server ServerConfig `yaml:"server"`
	Bot    BotConfig    `yaml:"bot"`
	Log    LogConfig    `yaml:"logger"`
}

// DefaultConfig возвращает конфигурацию со значениями по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8000,
			StaticDir: "static",
		},
		Log: LogConfig{
			Level:      "info",
			Path:       "logs/qrbot.log",
			ErrorPath:  "logs/qrbot_err.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем YAML-файл
// (если он есть), затем переменные окружения (включая .env)
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// .env не обязателен, его отсутствие не ошибка
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	config.Bot.BaseURL = resolveBaseURL(&config.Bot)

	return config, nil
}

// resolveBaseURL определяет внешний URL сервиса: BASE_URL,
// затем переменные Render, затем запасной вариант
func resolveBaseURL(bc *BotConfig) string {
	if bc.BaseURL != "" {
		return strings.TrimRight(bc.BaseURL, "/")
	}

	if bc.RenderExternalURL != "" {
		return strings.TrimRight(bc.RenderExternalURL, "/")
	}

	if bc.RenderServiceName != "" {
		return fmt.Sprintf("https://%s.onrender.com", bc.RenderServiceName)
	}

	return fallbackBaseURL
}

// Validate проверяет обязательные параметры перед запуском
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return ErrNoToken
	}
	return nil
}

// WebhookReady сообщает, достаточно ли настроек для регистрации вебхука
func (c *Config) WebhookReady() bool {
	return c.Bot.Token != "" && c.Bot.BaseURL != ""
}

// WebhookURL возвращает полный URL вебхука
func (c *Config) WebhookURL() string {
	return c.Bot.BaseURL + "/webhook"
}

// RunAddress возвращает адрес для HTTP-сервера
func (c *Config) RunAddress() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
