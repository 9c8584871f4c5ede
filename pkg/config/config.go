package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Cart     CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MOBIMART_APP_ENV" required:"true"`
	Port         string `envconfig:"MOBIMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MOBIMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MOBIMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MOBIMART_DB_DSN"`
	Driver string `envconfig:"MOBIMART_DB_DRIVER" default:"postgres"`

	SQLitePath string `envconfig:"MOBIMART_DB_SQLITE_PATH" default:"mobimart.db"`

	LegacyHost     string `envconfig:"MOBIMART_DB_HOST"`
	LegacyPort     int    `envconfig:"MOBIMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MOBIMART_DB_USER"`
	LegacyPassword string `envconfig:"MOBIMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"MOBIMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"MOBIMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns int `envconfig:"MOBIMART_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns int `envconfig:"MOBIMART_DB_MAX_IDLE_CONNS" default:"5"`

	// AutoMigrate runs goose migrations on startup in dev environments.
	AutoMigrate bool `envconfig:"MOBIMART_DB_AUTO_MIGRATE" default:"true"`
}

// UseSQLite reports whether the catalog runs on the embedded driver.
func (db DBConfig) UseSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL      string `envconfig:"MOBIMART_REDIS_URL"`
	Address  string `envconfig:"MOBIMART_REDIS_ADDR"`
	Password string `envconfig:"MOBIMART_REDIS_PASSWORD"`
	DB       int    `envconfig:"MOBIMART_REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"MOBIMART_REDIS_POOL_SIZE" default:"10"`
}

type CheckoutConfig struct {
	// StrictCardValidation additionally requires valid card details when a
	// card payment method is selected. The storefront historically only
	// checked that a method was chosen, so this defaults off.
	StrictCardValidation bool `envconfig:"MOBIMART_CHECKOUT_STRICT_CARD" default:"false"`
}

type CartConfig struct {
	// Flat shipping charged whenever the cart subtotal is positive.
	ShippingFlat float64 `envconfig:"MOBIMART_CART_SHIPPING_FLAT" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.UseSQLite() || db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
