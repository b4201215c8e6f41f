package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis server is configured. Without one the
// api keeps sessions in process memory.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	BucketReports string
	UseSSL        bool
	Region        string
	PresignTTL    time.Duration
}

func (c StorageConfig) Enabled() bool {
	return c.Endpoint != ""
}

type SecurityConfig struct {
	JWTAccessSecret string
	JWTAccessTTL    time.Duration
	SessionTTL      time.Duration
}

type AuthConfig struct {
	SimulatedDelay time.Duration
	SeedDemoUsers  bool
}

type CatalogConfig struct {
	Driver       string
	SeedFixtures bool
	CacheTTL     time.Duration
}

type CampaignsConfig struct {
	Stream           string
	Group            string
	Consumer         string
	ClaimInterval    time.Duration
	DispatchSchedule string
}

type EmailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
}

type LoggingConfig struct {
	Level string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Storage          StorageConfig
	Security         SecurityConfig
	Auth             AuthConfig
	Catalog          CatalogConfig
	Campaigns        CampaignsConfig
	Email            EmailConfig
	Logging          LoggingConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("LUMENQUEST")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Catalog.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("catalog driver %q requires postgres.dsn", c.Catalog.Driver)
		}
	default:
		return fmt.Errorf("unknown catalog driver %q", c.Catalog.Driver)
	}

	if c.Security.JWTAccessSecret == "" {
		if c.Environment == "production" {
			return errors.New("security.jwtaccesssecret is required in production")
		}
		c.Security.JWTAccessSecret = "lumenquest-dev-secret"
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.maxopen", 30)
	v.SetDefault("postgres.maxidle", 10)
	v.SetDefault("postgres.connmaxlifetime", "30m")
	v.SetDefault("postgres.automigrate", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.accesskey", "")
	v.SetDefault("storage.secretkey", "")
	v.SetDefault("storage.bucketreports", "lumenquest-reports")
	v.SetDefault("storage.usessl", false)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.presignttl", "15m")

	v.SetDefault("security.jwtaccesssecret", "")
	v.SetDefault("security.jwtaccessttl", "1h")
	v.SetDefault("security.sessionttl", "720h") // 30 days

	v.SetDefault("auth.simulateddelay", "1s")
	v.SetDefault("auth.seeddemousers", true)

	v.SetDefault("catalog.driver", StorageDriverMemory)
	v.SetDefault("catalog.seedfixtures", true)
	v.SetDefault("catalog.cachettl", "60s")

	v.SetDefault("campaigns.stream", "campaigns:deliver")
	v.SetDefault("campaigns.group", "campaign-workers")
	v.SetDefault("campaigns.consumer", "worker-1")
	v.SetDefault("campaigns.claiminterval", "30s")
	v.SetDefault("campaigns.dispatchschedule", "0 * * * * *")

	v.SetDefault("email.sendgridapikey", "")
	v.SetDefault("email.fromaddress", "notifications@lumenquest.com")
	v.SetDefault("email.fromname", "LUMEN Quest")

	v.SetDefault("logging.level", "")
	v.SetDefault("allowcorsorigins", []string{})
}
