package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, TTLs, business defaults)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Code       CodeConfig
	Limit      LimitConfig
	Validation ValidationConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// Tokens are minted by the identity provider; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type CodeConfig struct {
	TTL        time.Duration `envconfig:"CODE_TTL" default:"5m"`
	Length     int           `envconfig:"CODE_LENGTH" default:"6"`
	Alphabet   string        `envconfig:"CODE_ALPHABET" default:"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"`
	Prefix     string        `envconfig:"CODE_PREFIX" default:"EDC"`
	SigningKey string        `envconfig:"QR_SIGNING_KEY" required:"true"`
}

type LimitConfig struct {
	DefaultMonthly string `envconfig:"LIMIT_DEFAULT_MONTHLY" default:"500.00"`
	SpentBasis     string `envconfig:"LIMIT_SPENT_BASIS" default:"final_amount"`
	TimeZone       string `envconfig:"LIMIT_TIMEZONE" default:"Europe/Paris"`
}

type ValidationConfig struct {
	MaxAmount      string        `envconfig:"VALIDATION_MAX_AMOUNT" default:"100000"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

// An empty Addr disables the rule cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	RuleTTL  time.Duration `envconfig:"REDIS_RULE_TTL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c LimitConfig) DefaultMonthlyDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.DefaultMonthly)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid LIMIT_DEFAULT_MONTHLY %q: %w", c.DefaultMonthly, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("LIMIT_DEFAULT_MONTHLY must not be negative: %s", c.DefaultMonthly)
	}
	return d, nil
}

func (c LimitConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid LIMIT_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c ValidationConfig) MaxAmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.MaxAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid VALIDATION_MAX_AMOUNT %q: %w", c.MaxAmount, err)
	}
	return d, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
			ExposeHeaders:    []string{"Content-Length", "Idempotent-Replayed"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-jwt-signing",
		},
		Code: CodeConfig{
			TTL:        5 * time.Minute,
			Length:     6,
			Alphabet:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
			Prefix:     "EDC",
			SigningKey: "test-qr-signing-key",
		},
		Limit: LimitConfig{
			DefaultMonthly: "500.00",
			SpentBasis:     "final_amount",
			TimeZone:       "Europe/Paris",
		},
		Validation: ValidationConfig{
			MaxAmount:      "100000",
			IdempotencyTTL: 24 * time.Hour,
		},
	}
}
