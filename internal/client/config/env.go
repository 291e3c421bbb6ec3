package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/skillsphere/internal/flagx"
)

// parseEnv overlays Config with SKILLSPHERE_* environment variables. Unset
// variables keep the current value. When -e/-env-file names a dotenv file it
// is loaded first; variables already present in the process win.
//
// Panics when the dotenv file cannot be read or a value fails to parse.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFile(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
