package configs

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBSource        string        `env:"DB_SOURCE" envDefault:"foodyrush.db"`
	Port            string        `env:"PORT" envDefault:"8000"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"changeme"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	LocationAPIBase string        `env:"LOCATION_API_BASE" envDefault:"https://provinces.open-api.vn/api"`
	AdminEmail      string        `env:"ADMIN_EMAIL" envDefault:"admin@foodyrush.vn"`
	AdminPassword   string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		logrus.WithError(err).Fatal("parse config from env")
	}
	return cfg
}
