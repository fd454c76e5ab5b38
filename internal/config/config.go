package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	ZNS       ZNSConfig       `yaml:"zns"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"15s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"bkasim"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"20"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"    env:"JWT_SECRET"    validate:"required,min=16"`
	AllowOrigins string `yaml:"allow_origins" env:"CORS_ORIGINS"  env-default:""`
}

// Origins splits the comma separated CORS list. Empty means allow all.
func (a AuthConfig) Origins() []string {
	return splitList(a.AllowOrigins)
}

type StorageConfig struct {
	UploadDir    string `yaml:"upload_dir"    env:"UPLOAD_DIR"      env-default:"./uploads" validate:"required"`
	URLPrefix    string `yaml:"url_prefix"    env:"UPLOAD_URL"      env-default:"/uploads"  validate:"required"`
	MaxImageSize int64  `yaml:"max_image_mb"  env:"UPLOAD_MAX_MB"   env-default:"5"         validate:"gt=0"`
}

// MaxImageBytes converts the configured megabyte limit.
func (s StorageConfig) MaxImageBytes() int64 {
	return s.MaxImageSize << 20
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken     string `yaml:"bot_token"      env:"TELEGRAM_BOT_TOKEN" env-default:""`
	AdminChatIDs string `yaml:"admin_chat_ids" env:"TELEGRAM_CHAT_IDS"  env-default:""`
}

// ChatIDs parses the comma separated admin chat list.
func (t TelegramConfig) ChatIDs() ([]int64, error) {
	parts := splitList(t.AdminChatIDs)
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid telegram chat id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type ZNSConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"ZNS_BASE_URL"      env-default:""`
	APIKey       string        `yaml:"api_key"       env:"ZNS_API_KEY"       env-default:""`
	Timeout      time.Duration `yaml:"timeout"       env:"ZNS_TIMEOUT"       env-default:"10s" validate:"gt=0"`
	Retries      int           `yaml:"retries"       env:"ZNS_RETRIES"       env-default:"2"   validate:"min=0"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"ZNS_RETRY_BACKOFF" env-default:"500ms"`
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
