package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	tierChecked    = "checked"
	tierStrict     = "strict"
	tierBestEffort = "best-effort"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	errInvalidTier   = errors.New("invalid tier")
	errInvalidFormat = errors.New("invalid format")
)

// config holds the defaults read from the environment, overridden by flags.
type config struct {
	Tier   string `env:"SPECFUN_TIER" envDefault:"checked"`
	Format string `env:"SPECFUN_FORMAT" envDefault:"text"`
	Seed   uint64 `env:"SPECFUN_SEED" envDefault:"17"`
}

func loadConfig() (cfg config, err error) {
	if err = env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch cfg.Tier {
	case tierChecked, tierStrict, tierBestEffort:
	default:
		return fmt.Errorf("%w: %q", errInvalidTier, cfg.Tier)
	}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q", errInvalidFormat, cfg.Format)
	}
	return nil
}
