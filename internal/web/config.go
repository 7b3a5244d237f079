package web

import "github.com/caarlos0/env/v11"

// Config holds the web server settings, read from the environment.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"DECKFALL_ADDR" envDefault:":8080"`
	// StaticDir optionally points at a directory of UI assets to serve
	// at the root. When empty the server is API-only.
	StaticDir string `env:"DECKFALL_STATIC_DIR"`
	// LoadoutFile optionally points at a loadout YAML file whose
	// entries are offered alongside the built-in loadouts.
	LoadoutFile string `env:"DECKFALL_LOADOUTS"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
