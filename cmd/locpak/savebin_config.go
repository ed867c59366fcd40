package main

import (
	"github.com/locpak/locpak/format"
	"github.com/locpak/locpak/internal/options"
)

// saveBinConfig is the resolved runtime configuration for one save-bin
// invocation: target platform, output version byte, destination path, and
// compression strategy. None of it is file-sourced (spec.md §2.3 reserves
// the on-disk config surface for loc.ini alone), so it is built through the
// same functional-options shape the teacher uses for its codec runtime
// configuration rather than a bag of loose positional locals.
type saveBinConfig struct {
	platform format.Platform
	version  byte
	path     string
	strategy format.Strategy
}

type saveBinOption = options.Option[*saveBinConfig]

func withPlatform(p format.Platform) saveBinOption {
	return options.NoError(func(c *saveBinConfig) {
		c.platform = p
		c.version = p.DefaultVersion()
	})
}

func withVersion(v byte) saveBinOption {
	return options.NoError(func(c *saveBinConfig) { c.version = v })
}

func withPath(path string) saveBinOption {
	return options.NoError(func(c *saveBinConfig) { c.path = path })
}

func withStrategy(s format.Strategy) saveBinOption {
	return options.NoError(func(c *saveBinConfig) { c.strategy = s })
}

func newSaveBinConfig(opts ...saveBinOption) (*saveBinConfig, error) {
	cfg := &saveBinConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
