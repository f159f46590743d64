package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server             Server             `toml:"server"`
	Logs               Logs               `toml:"logs"`
	Database           Database           `toml:"database"`
	SessionStore       SessionStore       `toml:"session_store"`
	CatalogService     Integration        `toml:"catalog_service"`
	CustomerService    Integration        `toml:"customer_service"`
	AppointmentService Integration        `toml:"appointment_service"`
	Metrics            Metrics            `toml:"metrics"`
	Events             Events             `toml:"events"`
	Booking            Booking            `toml:"booking"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Database настройки PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SessionStore настройки хранилища сессий бронирования
type SessionStore struct {
	Backend       string `toml:"backend"` // "redis" или "memory"
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTLMinutes    int    `toml:"ttl_minutes"`
}

// Integration настройки HTTP клиента внешнего сервиса
type Integration struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Events настройки публикации событий в RabbitMQ
type Events struct {
	Enabled  bool   `toml:"enabled"`
	AmqpURL  string `toml:"amqp_url"`
	Exchange string `toml:"exchange"`
}

// Booking настройки шаблона рабочего дня
type Booking struct {
	WorkdayStartHour int `toml:"workday_start_hour"`
	WorkdayEndHour   int `toml:"workday_end_hour"`
	SlotStepMinutes  int `toml:"slot_step_minutes"`
}

// Load загружает конфигурацию из toml-файла и проставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.SessionStore.Backend == "" {
		cfg.SessionStore.Backend = "memory"
	}
	if cfg.SessionStore.TTLMinutes == 0 {
		cfg.SessionStore.TTLMinutes = 60
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-service"
	}
	if cfg.Booking.WorkdayStartHour == 0 {
		cfg.Booking.WorkdayStartHour = 8
	}
	if cfg.Booking.WorkdayEndHour == 0 {
		cfg.Booking.WorkdayEndHour = 18
	}
	if cfg.Booking.SlotStepMinutes == 0 {
		cfg.Booking.SlotStepMinutes = 30
	}
}

func validate(cfg *Config) error {
	if cfg.SessionStore.Backend != "memory" && cfg.SessionStore.Backend != "redis" {
		return fmt.Errorf("config: unknown session store backend %q", cfg.SessionStore.Backend)
	}
	if cfg.SessionStore.Backend == "redis" && cfg.SessionStore.RedisAddr == "" {
		return fmt.Errorf("config: session_store.redis_addr is required for redis backend")
	}
	if cfg.Booking.WorkdayStartHour < 0 || cfg.Booking.WorkdayEndHour > 23 ||
		cfg.Booking.WorkdayStartHour >= cfg.Booking.WorkdayEndHour {
		return fmt.Errorf("config: invalid workday hours %d..%d",
			cfg.Booking.WorkdayStartHour, cfg.Booking.WorkdayEndHour)
	}
	if cfg.Booking.SlotStepMinutes <= 0 || 60%cfg.Booking.SlotStepMinutes != 0 {
		return fmt.Errorf("config: slot_step_minutes must divide 60, got %d", cfg.Booking.SlotStepMinutes)
	}
	if cfg.Events.Enabled && cfg.Events.AmqpURL == "" {
		return fmt.Errorf("config: events.amqp_url is required when events are enabled")
	}
	return nil
}
