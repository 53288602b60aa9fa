package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Calendar      CalendarConfig      `toml:"calendar"`
	ProjectTypes  []ProjectTypeConfig `toml:"project_types"`
	Chatbot       ChatbotConfig       `toml:"chatbot"`
	ABTests       []ABTestConfig      `toml:"abtests"`
	Notifications NotificationsConfig `toml:"notifications"`
	Integrations  IntegrationsConfig  `toml:"integrations"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки аутентификации админских маршрутов
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// StorageConfig выбор хранилища журнала записей
// driver: memory (по умолчанию, состояние теряется при рестарте) | postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки подключения к Postgres (для driver = "postgres")
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

// DSN возвращает строку подключения к Postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// DayHoursConfig расписание работы на день недели
type DayHoursConfig struct {
	Enabled bool   `toml:"enabled"`
	Open    string `toml:"open"`
	Close   string `toml:"close"`
}

// CalendarConfig настройки календаря записей
type CalendarConfig struct {
	Timezone            string         `toml:"timezone"`
	SlotDurationMinutes int            `toml:"slot_duration_minutes"`
	BufferMinutes       int            `toml:"buffer_minutes"`
	MaxAdvanceDays      int            `toml:"max_advance_days"`
	Monday              DayHoursConfig `toml:"monday"`
	Tuesday             DayHoursConfig `toml:"tuesday"`
	Wednesday           DayHoursConfig `toml:"wednesday"`
	Thursday            DayHoursConfig `toml:"thursday"`
	Friday              DayHoursConfig `toml:"friday"`
	Saturday            DayHoursConfig `toml:"saturday"`
	Sunday              DayHoursConfig `toml:"sunday"`
}

// ProjectTypeConfig тип проекта с базовой оценкой стоимости
type ProjectTypeConfig struct {
	Name      string  `toml:"name"`
	BasePrice float64 `toml:"base_price"`
}

// ChatbotIntentConfig правило чат-бота: ключевые слова и ответ
type ChatbotIntentConfig struct {
	Name       string   `toml:"name"`
	Keywords   []string `toml:"keywords"`
	Reply      string   `toml:"reply"`
	OfferDates bool     `toml:"offer_dates"`
}

// ChatbotConfig настройки чат-бота
type ChatbotConfig struct {
	Greeting      string                `toml:"greeting"`
	FallbackReply string                `toml:"fallback_reply"`
	Intents       []ChatbotIntentConfig `toml:"intents"`
}

// ABVariantConfig вариант A/B-эксперимента
type ABVariantConfig struct {
	Name   string `toml:"name"`
	Weight int    `toml:"weight"`
}

// ABTestConfig A/B-эксперимент
type ABTestConfig struct {
	ID       string            `toml:"id"`
	Name     string            `toml:"name"`
	Variants []ABVariantConfig `toml:"variants"`
}

// NotificationsConfig адресаты и каналы уведомлений
type NotificationsConfig struct {
	Enabled        bool   `toml:"enabled"`
	AdminEmail     string `toml:"admin_email"`
	AdminPhone     string `toml:"admin_phone"`
	NotifyCustomer bool   `toml:"notify_customer"`
}

// SMTPConfig настройки SMTP-рассылки
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// TwilioConfig настройки Twilio SMS
type TwilioConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"`
}

// ZapierConfig URL-ы Zapier catch-хуков по типам событий
type ZapierConfig struct {
	Enabled        bool   `toml:"enabled"`
	LeadHookURL    string `toml:"lead_hook_url"`
	BookingHookURL string `toml:"booking_hook_url"`
	InvoiceHookURL string `toml:"invoice_hook_url"`
	Timeout        int    `toml:"timeout"`
}

// StripeConfig настройки Stripe
type StripeConfig struct {
	Enabled          bool   `toml:"enabled"`
	APIKey           string `toml:"api_key"`
	WebhookSecret    string `toml:"webhook_secret"`
	WebhookTolerance int    `toml:"webhook_tolerance"`
}

// FreshBooksConfig настройки FreshBooks
type FreshBooksConfig struct {
	Enabled   bool   `toml:"enabled"`
	BaseURL   string `toml:"base_url"`
	APIToken  string `toml:"api_token"`
	AccountID string `toml:"account_id"`
	Timeout   int    `toml:"timeout"`
}

// IntegrationsConfig внешние интеграции
type IntegrationsConfig struct {
	SMTP       SMTPConfig       `toml:"smtp"`
	Twilio     TwilioConfig     `toml:"twilio"`
	Zapier     ZapierConfig     `toml:"zapier"`
	Stripe     StripeConfig     `toml:"stripe"`
	FreshBooks FreshBooksConfig `toml:"freshbooks"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig конфигурация по умолчанию
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			File:  "logs/siteops.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "siteops",
			Path:        "/metrics",
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Calendar: CalendarConfig{
			Timezone:            domain.DefaultTimezone,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			BufferMinutes:       domain.DefaultBufferMinutes,
			MaxAdvanceDays:      domain.DefaultMaxAdvanceDays,
		},
	}
}

// validate проверяет бизнес-ограничения конфигурации
func (c *Config) validate() error {
	if c.Calendar.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Calendar.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: calendar.slot_duration_minutes must be in [%d, %d]",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if c.Calendar.BufferMinutes < domain.MinBufferMinutes ||
		c.Calendar.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: calendar.buffer_minutes must be in [%d, %d]",
			ErrInvalidConfig, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if c.Calendar.MaxAdvanceDays < domain.MinAdvanceDays ||
		c.Calendar.MaxAdvanceDays > domain.MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: calendar.max_advance_days must be in [%d, %d]",
			ErrInvalidConfig, domain.MinAdvanceDays, domain.MaxAdvanceDaysLimit)
	}

	if c.Storage.Driver != "memory" && c.Storage.Driver != "postgres" {
		return fmt.Errorf("%w: storage.driver must be memory or postgres", ErrInvalidConfig)
	}

	for _, test := range c.ABTests {
		if test.ID == "" {
			return fmt.Errorf("%w: abtest id is required", ErrInvalidConfig)
		}
		if len(test.Variants) < 2 {
			return fmt.Errorf("%w: abtest %s must have at least two variants", ErrInvalidConfig, test.ID)
		}
		for _, v := range test.Variants {
			if v.Weight <= 0 {
				return fmt.Errorf("%w: abtest %s variant %s weight must be positive",
					ErrInvalidConfig, test.ID, v.Name)
			}
		}
	}

	return nil
}

// CalendarDomain конвертирует TOML-конфиг календаря в доменную модель
// Загружает таймзону и парсит рабочие часы
func (c *Config) CalendarDomain() (*domain.CalendarConfig, error) {
	location, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Calendar.Timezone)
	}

	hours := domain.BusinessHours{}
	days := []struct {
		src DayHoursConfig
		dst *domain.DayHours
	}{
		{c.Calendar.Monday, &hours.Monday},
		{c.Calendar.Tuesday, &hours.Tuesday},
		{c.Calendar.Wednesday, &hours.Wednesday},
		{c.Calendar.Thursday, &hours.Thursday},
		{c.Calendar.Friday, &hours.Friday},
		{c.Calendar.Saturday, &hours.Saturday},
		{c.Calendar.Sunday, &hours.Sunday},
	}

	for _, day := range days {
		if !day.src.Enabled {
			*day.dst = domain.DayHours{Enabled: false}
			continue
		}

		open, err := types.NewTimeStringFromString(day.src.Open)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid open time %q", ErrInvalidConfig, day.src.Open)
		}
		closeTime, err := types.NewTimeStringFromString(day.src.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid close time %q", ErrInvalidConfig, day.src.Close)
		}
		if !open.IsBefore(closeTime) {
			return nil, fmt.Errorf("%w: open time %s must be before close time %s",
				ErrInvalidConfig, open, closeTime)
		}

		*day.dst = domain.DayHours{Enabled: true, Open: open, Close: closeTime}
	}

	return &domain.CalendarConfig{
		Hours:               hours,
		SlotDurationMinutes: c.Calendar.SlotDurationMinutes,
		BufferMinutes:       c.Calendar.BufferMinutes,
		MaxAdvanceDays:      c.Calendar.MaxAdvanceDays,
		Timezone:            c.Calendar.Timezone,
		Location:            location,
	}, nil
}

// ProjectPrices возвращает таблицу базовых цен по типам проектов
func (c *Config) ProjectPrices() map[string]float64 {
	prices := make(map[string]float64, len(c.ProjectTypes))
	for _, pt := range c.ProjectTypes {
		prices[pt.Name] = pt.BasePrice
	}
	return prices
}

// Experiments конвертирует конфиг A/B-экспериментов в доменные модели
func (c *Config) Experiments() []*domain.Experiment {
	experiments := make([]*domain.Experiment, 0, len(c.ABTests))
	for _, test := range c.ABTests {
		variants := make([]domain.Variant, 0, len(test.Variants))
		for _, v := range test.Variants {
			variants = append(variants, domain.Variant{Name: v.Name, Weight: v.Weight})
		}
		experiments = append(experiments, &domain.Experiment{
			ID:       test.ID,
			Name:     test.Name,
			Variants: variants,
		})
	}
	return experiments
}
