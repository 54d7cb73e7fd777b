package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	DataFile      string        `env:"DATA_FILE" envDefault:"motomart.db"`
	FeedFile      string        `env:"FEED_FILE"` // empty = embedded catalog
	MediaDir      string        `env:"MEDIA_DIR" envDefault:"./web/media"`
	LogFile       string        `env:"LOG_FILE" envDefault:"./motomart.log"`
	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY" envDefault:"750ms"`
}

func Load() (Config, error) {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	log.Printf("[config] PORT=%s DATA_FILE=%s FEED_FILE=%s MEDIA_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DataFile, cfg.FeedFile, cfg.MediaDir, cfg.LogFile)
	return cfg, nil
}
