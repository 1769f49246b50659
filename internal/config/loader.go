package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if BATSTAT_CONFIG is set
//  3. env (prefix BATSTAT_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("BATSTAT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Env keys like BATSTAT_MIN_AT_BATS map to min_at_bats; underscores
	// are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("BATSTAT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "batstat_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.InputPath == "" {
		return nil, ErrEmptyInputPath
	}
	if cfg.MinAtBats < 0 {
		return nil, ErrNegativeThreshold
	}
	return &cfg, nil
}
