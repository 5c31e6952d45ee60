package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	// PublicURL is the externally visible base of this API, used for file links.
	PublicURL string `env:"PUBLIC_URL, default=http://localhost:8080"`
	// ResetURL is the frontend page that receives password reset tokens.
	ResetURL string `env:"RESET_PASSWORD_URL, default=http://localhost:3000/reset-password"`

	JWT     JWTConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Storage StorageConfig
	OTP     OTPConfig
	Admin   AdminSeedConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	TokenTTL time.Duration `env:"JWT_TTL,    default=24h"`
}

type MongoConfig struct {
	URI         string        `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string        `env:"MONGO_DB,            default=gigs_platform"`
	MaxPoolSize uint64        `env:"MONGO_MAX_POOL_SIZE, default=50"`
	Timeout     time.Duration `env:"MONGO_TIMEOUT,       default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM, default=no-reply@gigs.local"`
	Workers  int    `env:"MAIL_WORKERS, default=4"`
}

type StorageConfig struct {
	Backend  string `env:"STORAGE_BACKEND, default=local"`
	BasePath string `env:"STORAGE_PATH,    default=./uploads"`
	Bucket   string `env:"STORAGE_BUCKET,  default=uploads"`
}

type OTPConfig struct {
	TTL      time.Duration `env:"OTP_TTL,       default=10m"`
	ResetTTL time.Duration `env:"RESET_TTL,     default=10m"`
	Cooldown time.Duration `env:"OTP_COOLDOWN,  default=60s"`
	Window   time.Duration `env:"OTP_WINDOW,    default=1h"`
	MaxSends int64         `env:"OTP_MAX_SENDS, default=5"`
}

// AdminSeedConfig describes an administrator created at startup when no
// account with that email exists yet. Seeding is skipped when Email is empty.
type AdminSeedConfig struct {
	Name     string `env:"ADMIN_NAME, default=Administrator"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads an optional .env file and then configuration from environment
// variables using go-envconfig. Variables already set take precedence.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper(), ".env")
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper, dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", strings.Join(dotenv, ", "), err)
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if cfg.Storage.Backend != "local" && cfg.Storage.Backend != "gridfs" {
		return nil, fmt.Errorf("STORAGE_BACKEND must be local or gridfs, got %q", cfg.Storage.Backend)
	}
	if cfg.Admin.Email != "" && len(cfg.Admin.Password) < 8 {
		return nil, errors.New("ADMIN_PASSWORD must be at least 8 characters when ADMIN_EMAIL is set")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
