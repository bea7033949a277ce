package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls where fixtures land and how strictly samples are checked.
type Config struct {
	OutDir          string
	Pretty          bool
	ValidateSchemas bool
}

type fileConfig struct {
	OutDir          string `toml:"out_dir"`
	Pretty          bool   `toml:"pretty"`
	ValidateSchemas bool   `toml:"validate_schemas"`
}

func defaultConfig() Config {
	return Config{
		OutDir:          "fixtures",
		ValidateSchemas: true,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load fixturectl config: %w", err)
	}

	if meta.IsDefined("out_dir") {
		dir := strings.TrimSpace(raw.OutDir)
		if dir != "" {
			cfg.OutDir = dir
		}
	}
	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("validate_schemas") {
		cfg.ValidateSchemas = raw.ValidateSchemas
	}
	return cfg, nil
}
