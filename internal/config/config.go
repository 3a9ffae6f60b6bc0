package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken    string `env:"DISCORD_TOKEN,required"`
	GuildID         string `env:"GUILD_ID"`
	StoragePath     string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	FlagOptionsPath string `env:"FLAG_OPTIONS_PATH" envDefault:"resources/pride/flag_options.json"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile         string `env:"LOG_FILE"`
	EffectWorkers   int    `env:"EFFECT_WORKERS" envDefault:"10"`
}

func New() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
