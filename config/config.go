package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string   `envconfig:"PORT" default:"5000"`
	Env         string   `envconfig:"ENV" default:"dev"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
	AutoMigrate bool     `envconfig:"AUTO_MIGRATE" default:"false"`

	// 埋め込みにしておくとenvconfigがプレフィックスを付けない
	Database
	JWT
	Stripe
	Admin
	Redis
	AMQP
	Log
	Tracing
}

type Database struct {
	// mongo | postgres | sqlite
	Driver string `envconfig:"DB_DRIVER" default:"mongo"`

	MongoURI     string `envconfig:"MONGO_URI"`
	MongoDB      string `envconfig:"MONGO_DB" default:"manufacturer_website"`
	User         string `envconfig:"DB_USER"`
	Pass         string `envconfig:"DB_PASS"`
	MongoCluster string `envconfig:"DB_CLUSTER" default:"cluster0.hborg.mongodb.net"`

	Host     string `envconfig:"DB_HOST"`
	DBPort   string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME"`
	Password string `envconfig:"DB_PASSWORD"`

	SQLitePath string `envconfig:"SQLITE_PATH" default:":memory:"`

	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type JWT struct {
	Secret    string        `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	ExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"24h"`
}

type Stripe struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY"`
}

type Admin struct {
	// gated | legacy
	GrantPolicy string `envconfig:"ADMIN_GRANT_POLICY" default:"gated"`
	Email       string `envconfig:"ADMIN_EMAIL"`
}

type Redis struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"60s"`
}

type AMQP struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"manufacturer.events"`
}

type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE"`
}

type Tracing struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"gin-manufacturer"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must not be empty")
	}
	switch c.Database.Driver {
	case "mongo", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Admin.GrantPolicy {
	case "gated", "legacy":
	default:
		return fmt.Errorf("unsupported ADMIN_GRANT_POLICY %q", c.Admin.GrantPolicy)
	}
	return nil
}

// MongoURL MONGO_URIが未設定の場合はDB_USER/DB_PASSからAtlasの接続文字列を組み立てる
func (d Database) MongoURL() string {
	if d.MongoURI != "" {
		return d.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", d.User, d.Pass, d.MongoCluster)
}
