// Package config загружает настройки из YAML-файла и переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config хранит все настройки приложения.
type Config struct {
	APIPort  string   `yaml:"api_port" validate:"required,numeric"`
	LogLevel string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	DB       DB       `yaml:"db"`
	BotToken string   `yaml:"bot_token"`
	Delays   Delays   `yaml:"delays"`
	Sessions Sessions `yaml:"sessions"`
	Profile  Identity `yaml:"profile"`
}

// DB - параметры подключения к базе данных. Драйвер "sqlite" поднимает базу в памяти процесса.
type DB struct {
	Driver string `yaml:"driver" validate:"oneof=sqlite postgres"`
	Host   string `yaml:"host" validate:"required_if=Driver postgres"`
	Port   string `yaml:"port" validate:"required_if=Driver postgres"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	Name   string `yaml:"name" validate:"required_if=Driver postgres"`
	Path   string `yaml:"path"` // файл SQLite; пусто - база в памяти
}

// DSN формирует строку подключения для выбранного драйвера.
func (d DB) DSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.User, d.Pass, d.Name)
	}
	if d.Path == "" {
		return ":memory:"
	}
	return d.Path
}

// Delays - длительность имитации "долгих" операций.
type Delays struct {
	Typing   time.Duration `yaml:"typing" validate:"gte=0"`
	Optimize time.Duration `yaml:"optimize" validate:"gte=0"`
	Weather  time.Duration `yaml:"weather" validate:"gte=0"`
	Plan     time.Duration `yaml:"plan" validate:"gte=0"`
}

// Sessions - срок жизни неактивных чат-сессий.
type Sessions struct {
	IdleTTL time.Duration `yaml:"idle_ttl" validate:"gt=0"`
	Sweep   time.Duration `yaml:"sweep" validate:"gt=0"` // период проверки
}

// Identity - профиль пользователя по умолчанию (приложение однопользовательское).
type Identity struct {
	UserID int    `yaml:"user_id" validate:"gt=0"`
	Name   string `yaml:"name" validate:"required"`
}

// Default возвращает настройки по умолчанию, совпадающие с задержками прототипа.
func Default() Config {
	return Config{
		APIPort:  "8080",
		LogLevel: "info",
		DB: DB{
			Driver: "sqlite",
			Port:   "5432",
		},
		Delays: Delays{
			Typing:   1500 * time.Millisecond,
			Optimize: 2000 * time.Millisecond,
			Weather:  1500 * time.Millisecond,
			Plan:     2000 * time.Millisecond,
		},
		Sessions: Sessions{
			IdleTTL: 30 * time.Minute,
			Sweep:   time.Minute,
		},
		Profile: Identity{UserID: 1, Name: "Alex Morgan"},
	}
}

// Load читает файл из CAMPWISE_CONFIG (если задан), применяет переменные окружения и проверяет результат.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("CAMPWISE_CONFIG"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("не удалось прочитать конфигурацию %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("некорректный YAML в %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.APIPort, "API_PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.DB.Driver, "DB_DRIVER")
	setString(&c.DB.Host, "DB_HOST")
	setString(&c.DB.Port, "DB_PORT")
	setString(&c.DB.User, "DB_USER")
	setString(&c.DB.Pass, "DB_PASS")
	setString(&c.DB.Name, "DB_NAME")
	setString(&c.DB.Path, "DB_PATH")
	setString(&c.BotToken, "BOT_TOKEN")
	for key, target := range map[string]*time.Duration{
		"TYPING_DELAY":   &c.Delays.Typing,
		"OPTIMIZE_DELAY": &c.Delays.Optimize,
		"WEATHER_DELAY":  &c.Delays.Weather,
		"PLAN_DELAY":     &c.Delays.Plan,
		"SESSION_TTL":    &c.Sessions.IdleTTL,
		"SESSION_SWEEP":  &c.Sessions.Sweep,
	} {
		if err := setDuration(target, key); err != nil {
			return err
		}
	}
	if v := os.Getenv("PROFILE_USER_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PROFILE_USER_ID: %w", err)
		}
		c.Profile.UserID = id
	}
	return nil
}

// Validate проверяет настройки по тегам validate.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("некорректная конфигурация: %w", err)
	}
	return nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func setDuration(target *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = d
	return nil
}
