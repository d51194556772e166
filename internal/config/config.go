package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Postgres PostgresConfig `env:",prefix=POSTGRES_"`
	Redis    RedisConfig    `env:",prefix=REDIS_"`
	JWT      JWTConfig      `env:",prefix=JWT_"`
	OpenAI   OpenAIConfig   `env:",prefix=OPENAI_"`
	Security SecurityConfig `env:",prefix="`
	CORS     CORSConfig     `env:",prefix=CORS_"`
	Env      string         `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port         string   `env:"PORT,default=8080"`
	Host         string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=15s"`
}

type PostgresConfig struct {
	Host           string `env:"HOST,default=localhost"`
	Port           string `env:"PORT,default=5432"`
	User           string `env:"USER,default=nutriblend"`
	Password       string `env:"PASSWORD,default=nutriblend_password"`
	DBName         string `env:"DB,default=nutriblend_db"`
	SSLMode        string `env:"SSLMODE,default=disable"`
	MigrationsPath string `env:"MIGRATIONS,default=file://migrations"`
}

type RedisConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=6379"`
	Password string `env:"PASSWORD,default="`
	DB       int    `env:"DB,default=0"`
}

// JWTConfig carries three independent signing secrets. Access, refresh and
// reset tokens are verified against different keys, so a token minted for one
// purpose never passes another verifier.
type JWTConfig struct {
	AccessSecret       string   `env:"ACCESS_SECRET,required"`
	RefreshSecret      string   `env:"REFRESH_SECRET,required"`
	ResetSecret        string   `env:"RESET_SECRET,required"`
	AccessTokenExpiry  Duration `env:"ACCESS_TOKEN_EXPIRY,default=15m"`
	RefreshTokenExpiry Duration `env:"REFRESH_TOKEN_EXPIRY,default=7d"`
	ResetTokenExpiry   Duration `env:"RESET_TOKEN_EXPIRY,default=1h"`
}

type OpenAIConfig struct {
	APIKey  string   `env:"API_KEY,required"`
	Model   string   `env:"MODEL,default=gpt-4o-2024-08-06"`
	BaseURL string   `env:"BASE_URL,default="`
	Timeout Duration `env:"TIMEOUT,default=30s"`
}

type SecurityConfig struct {
	BCryptCost int `env:"BCRYPT_COST,default=12"`

	RateLimitRequests int      `env:"RATE_LIMIT_REQUESTS,default=100"`
	RateLimitWindow   Duration `env:"RATE_LIMIT_WINDOW,default=15m"`

	LoginRateLimitRequests int      `env:"LOGIN_RATE_LIMIT_REQUESTS,default=5"`
	LoginRateLimitWindow   Duration `env:"LOGIN_RATE_LIMIT_WINDOW,default=15m"`

	ResetRateLimitRequests int      `env:"RESET_RATE_LIMIT_REQUESTS,default=3"`
	ResetRateLimitWindow   Duration `env:"RESET_RATE_LIMIT_WINDOW,default=1h"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// DSN returns PostgreSQL connection string
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Address returns Redis connection address
func (r RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var config Config

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	for name, secret := range map[string]string{
		"JWT_ACCESS_SECRET":  config.JWT.AccessSecret,
		"JWT_REFRESH_SECRET": config.JWT.RefreshSecret,
		"JWT_RESET_SECRET":   config.JWT.ResetSecret,
	} {
		if len(secret) < 32 {
			return nil, fmt.Errorf("%s must be at least 32 characters long", name)
		}
	}

	if config.JWT.AccessSecret == config.JWT.RefreshSecret ||
		config.JWT.AccessSecret == config.JWT.ResetSecret ||
		config.JWT.RefreshSecret == config.JWT.ResetSecret {
		return nil, fmt.Errorf("JWT access, refresh and reset secrets must be distinct")
	}

	return &config, nil
}

// LoadWithDefaults loads configuration with default context
func LoadWithDefaults() (*Config, error) {
	return Load(context.Background())
}
