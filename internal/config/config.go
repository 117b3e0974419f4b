package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Raffle   *RaffleConfig   `mapstructure:"raffle"`
}

type APIConfig struct {
	Port               string   `mapstructure:"port"`
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DB           string `mapstructure:"db"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// DSN builds a libpq style connection string understood by the pgx driver.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

// RaffleConfig holds the purchase limits of the ticket ledger. It can change
// at runtime, see Watch.
type RaffleConfig struct {
	MaxTicketsPerPurchase int           `mapstructure:"max_tickets_per_purchase"`
	MaxAllocationAttempts int           `mapstructure:"max_allocation_attempts"`
	ReconcileInterval     time.Duration `mapstructure:"reconcile_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.environment", "development")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("raffle.max_tickets_per_purchase", 10)
	v.SetDefault("raffle.max_allocation_attempts", 3)
	v.SetDefault("raffle.reconcile_interval", "0s")
}

func newViper(path string) *viper.Viper {
	file := filepath.Base(path)
	ext := filepath.Ext(file)

	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(file, ext))
	v.SetConfigType(strings.TrimPrefix(ext, "."))
	v.AddConfigPath(filepath.Dir(path))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return v
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Raffle.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *RaffleConfig) validate() error {
	if c.MaxTicketsPerPurchase < 1 {
		return fmt.Errorf("raffle.max_tickets_per_purchase must be positive, got %d", c.MaxTicketsPerPurchase)
	}
	if c.MaxAllocationAttempts < 1 {
		return fmt.Errorf("raffle.max_allocation_attempts must be positive, got %d", c.MaxAllocationAttempts)
	}
	if c.ReconcileInterval < 0 {
		return fmt.Errorf("raffle.reconcile_interval must not be negative, got %s", c.ReconcileInterval)
	}

	return nil
}

func isConfigFileNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

// Load reads the file at path on top of the defaults and the environment.
// A missing file is fine, the service then runs on defaults and env vars.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil && !isConfigFileNotFound(err) {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return unmarshal(v)
}

// Watch reloads the file at path whenever it is written and hands the new
// raffle section to onChange. Invalid edits are reported to onErr and ignored.
// Without a file there is nothing to watch and Watch returns nil.
func Watch(path string, onChange func(*RaffleConfig), onErr func(error)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		if isConfigFileNotFound(err) {
			return nil
		}
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := unmarshal(v)
		if err != nil {
			onErr(fmt.Errorf("reloading %s -> %w", e.Name, err))
			return
		}
		onChange(conf.Raffle)
	})
	v.WatchConfig()

	return nil
}
