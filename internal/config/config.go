package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Angsur"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// KV selects where the installment collection is persisted.
	KV struct {
		Backend string `envconfig:"KV_BACKEND" default:"file"`
		Dir     string `envconfig:"KV_DIR" default:"./data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"angsur"`
	}

	Auth struct {
		// Secret enables bearer-token auth on the API when set.
		Secret string `envconfig:"AUTH_SECRET"`
	}
}

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
