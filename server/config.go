package server

import "github.com/joeshaw/envdecode"

// Config holds the server's environment-driven settings
type Config struct {
	Addr   string `env:"CALC_ADDR,default=:8000"`
	DBPath string `env:"CALC_DB,default=./summaries.db"`
}

// ConfigFromEnv decodes Config from the process environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
