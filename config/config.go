package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config collects the engine's file locations and table defaults from the
// environment, with an optional .env file for local overrides.
type Config struct {
	UsersFile string        `env:"UNO_USERS_FILE" envDefault:"users.txt"`
	SavesDir  string        `env:"UNO_SAVES_DIR" envDefault:"saves"`
	LogDir    string        `env:"UNO_LOG_DIR" envDefault:"logs"`
	Bots      int           `env:"UNO_BOTS" envDefault:"3"`
	BotDelay  time.Duration `env:"UNO_BOT_DELAY" envDefault:"1s"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
