package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Milling MillingConfig
	Ledger  LedgerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Madrid"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Actor-ID,X-Actor-Role"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"CET"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// MillingConfig holds the plant's scheduling and yield constants.
type MillingConfig struct {
	ByproductRatio    decimal.Decimal `envconfig:"MILLING_BYPRODUCT_RATIO" default:"0.43"`
	YieldMin          decimal.Decimal `envconfig:"MILLING_YIELD_MIN" default:"0.08"`
	YieldMax          decimal.Decimal `envconfig:"MILLING_YIELD_MAX" default:"0.20"`
	SlotStep          time.Duration   `envconfig:"MILLING_SLOT_STEP" default:"15m"`
	SlotMaxAttempts   int             `envconfig:"MILLING_SLOT_MAX_ATTEMPTS" default:"5"`
	SlotSearchHorizon time.Duration   `envconfig:"MILLING_SLOT_SEARCH_HORIZON" default:"24h"`
}

// LedgerConfig configures the DynamoDB movement ledger. An empty table name
// disables the ledger.
type LedgerConfig struct {
	Table           string `envconfig:"LEDGER_TABLE"`
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
}

func (c LedgerConfig) Enabled() bool {
	return c.Table != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Milling: MillingConfig{
			ByproductRatio:    decimal.RequireFromString("0.43"),
			YieldMin:          decimal.RequireFromString("0.08"),
			YieldMax:          decimal.RequireFromString("0.20"),
			SlotStep:          15 * time.Minute,
			SlotMaxAttempts:   5,
			SlotSearchHorizon: 24 * time.Hour,
		},
	}
}
