package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays Config with the MENTORLY_* variables that are set.
// It panics on values that do not parse.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
