// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv), в т.ч. подгруженные из .env.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	AppName   string          `yaml:"app_name" env:"APP_NAME" env-default:"social-network"`
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Auth      AuthConfig      `yaml:"auth"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	S3        S3Config        `yaml:"s3"`
	Mail      MailConfig      `yaml:"mail"`
	Google    GoogleConfig    `yaml:"google"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Outbox    OutboxConfig    `yaml:"outbox"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки REST-сервера.
type HTTPConfig struct {
	Host              string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes" env:"HTTP_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// GRPCConfig описывает сетевые настройки gRPC-сервера (health-check).
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

// MetricsConfig — служебный HTTP (/livez, /healthz, /metrics).
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// SecretPair — пара секретов одного уровня подписи.
type SecretPair struct {
	Access  string `yaml:"access"`
	Refresh string `yaml:"refresh"`
}

// Secrets — секреты для уровней Bearer (обычные аккаунты) и System (администраторы).
type Secrets struct {
	Bearer SecretPair `yaml:"bearer"`
	System SecretPair `yaml:"system"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	AccessUserSecret    string        `yaml:"access_user_secret" env:"ACCESS_USER_TOKEN_SIGNATURE"`
	RefreshUserSecret   string        `yaml:"refresh_user_secret" env:"REFRESH_USER_TOKEN_SIGNATURE"`
	AccessSystemSecret  string        `yaml:"access_system_secret" env:"ACCESS_SYSTEM_TOKEN_SIGNATURE"`
	RefreshSystemSecret string        `yaml:"refresh_system_secret" env:"REFRESH_SYSTEM_TOKEN_SIGNATURE"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL     time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer              string        `yaml:"issuer" env:"TOKEN_ISSUER" env-default:"social-network"`
	BcryptCost          int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	JanitorPeriod       time.Duration `yaml:"janitor_period" env:"REVOKED_JANITOR_PERIOD" env-default:"1h"`
}

// Secrets собирает секреты в пары по уровням подписи.
func (a AuthConfig) Secrets() Secrets {
	return Secrets{
		Bearer: SecretPair{Access: a.AccessUserSecret, Refresh: a.RefreshUserSecret},
		System: SecretPair{Access: a.AccessSystemSecret, Refresh: a.RefreshSystemSecret},
	}
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — кэш журнала отзыва. Пустой URL отключает кэш.
type RedisConfig struct {
	RedisURL    string        `yaml:"redis_url" env:"REDIS_URL"`
	Prefix      string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"social:revoked:"`
	NegativeTTL time.Duration `yaml:"negative_ttl" env:"REDIS_NEGATIVE_TTL" env-default:"30s"`
}

// S3Config — объектное хранилище (MinIO/S3).
type S3Config struct {
	Endpoint          string        `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"localhost:9000"`
	AccessKey         string        `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey         string        `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Bucket            string        `yaml:"bucket" env:"S3_BUCKET" env-default:"social"`
	UseSSL            bool          `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
	PresignTTL        time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"1h"`
	ProfileImageGrace time.Duration `yaml:"profile_image_grace" env:"S3_PROFILE_IMAGE_GRACE" env-default:"1m"`
}

// MailConfig — SMTP-отправка писем.
type MailConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

// Addr возвращает адрес в формате host:port.
func (m MailConfig) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// GoogleConfig — вход через Google.
type GoogleConfig struct {
	ClientIDs    []string `yaml:"client_ids" env:"WEB_CLIENT_IDS" env-separator:","`
	ClientSecret string   `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirect_url" env:"GOOGLE_REDIRECT_URL"`
	JWKSURL      string   `yaml:"jwks_url" env:"GOOGLE_JWKS_URL" env-default:"https://www.googleapis.com/oauth2/v3/certs"`
}

// RateLimitConfig — ограничение частоты запросов на IP.
type RateLimitConfig struct {
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"2000"`
	Window   time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1h"`
}

// OutboxConfig — очередь фоновых задач.
type OutboxConfig struct {
	Workers  int `yaml:"workers" env:"OUTBOX_WORKERS" env-default:"4"`
	Capacity int `yaml:"capacity" env:"OUTBOX_CAPACITY" env-default:"256"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"15s"`
	Task     time.Duration `yaml:"task" env:"TASK_TIMEOUT" env-default:"30s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LoadDotEnv подгружает переменные из файлов .env (если они есть).
// Уже выставленные переменные окружения не перезаписываются.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return nil
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML,
// затем конфигурация проходит validate().
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) error {
		if p == "" {
			return fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		return nil
	}

	switch {
	case path != "":
		if err := tryRead(path); err != nil {
			return nil, err
		}
	case os.Getenv("CONFIG_PATH") != "":
		if err := tryRead(os.Getenv("CONFIG_PATH")); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat("local.yaml"); err == nil {
			if err := tryRead("local.yaml"); err != nil {
				return nil, err
			}
		} else if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate проверяет согласованность значений, которые cleanenv проверить не может.
func (c *Config) validate() error {
	secrets := []string{
		c.Auth.AccessUserSecret,
		c.Auth.RefreshUserSecret,
		c.Auth.AccessSystemSecret,
		c.Auth.RefreshSystemSecret,
	}

	seen := make(map[string]struct{}, len(secrets))
	for _, s := range secrets {
		if s == "" {
			return errors.New("config: all four token signatures must be set")
		}

		if _, ok := seen[s]; ok {
			return errors.New("config: token signatures must be distinct")
		}
		seen[s] = struct{}{}
	}

	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("config: token ttl must be positive")
	}

	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return errors.New("config: refresh_token_ttl must exceed access_token_ttl")
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: bcrypt_cost must be in [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.RateLimit.Requests < 0 || c.RateLimit.Window < 0 {
		return errors.New("config: rate_limit must not be negative")
	}

	if c.Outbox.Workers <= 0 {
		return errors.New("config: outbox.workers must be positive")
	}

	return nil
}
