package custdb

import (
	"github.com/jinzhu/copier"
	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultRenderCacheShards = 4
	minRenderCacheBytes      = 64 << 10
	maxRenderCacheBytes      = 64 << 20
)

type Config struct {
	// SeedFile is a json dataset read by Open. When empty Open uses SeedDataset.
	SeedFile string

	DisableRenderCache  bool
	RenderCacheShards   int
	RenderCacheMaxBytes uint64

	Logger *zap.Logger
}

type Option func(cfg *Config) error

// WithConfig overlays every non-empty field of c on top of the current config.
func WithConfig(c Config) Option {
	return func(cfg *Config) error {
		if err := copier.CopyWithOption(cfg, &c, copier.Option{IgnoreEmpty: true}); err != nil {
			return errors.Wrap(err, "could not apply config")
		}

		return nil
	}
}

func WithSeedFile(path string) Option {
	return func(cfg *Config) error {
		cfg.SeedFile = path
		return nil
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = l
		return nil
	}
}

func WithRenderCache(shards int, maxBytes uint64) Option {
	return func(cfg *Config) error {
		cfg.DisableRenderCache = false
		cfg.RenderCacheShards = shards
		cfg.RenderCacheMaxBytes = maxBytes
		return nil
	}
}

func WithoutRenderCache() Option {
	return func(cfg *Config) error {
		cfg.DisableRenderCache = true
		return nil
	}
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.RenderCacheShards == 0 {
		cfg.RenderCacheShards = defaultRenderCacheShards
	} else if cfg.RenderCacheShards < 2 {
		return errors.Errorf("render cache needs at least 2 shards, got %d", cfg.RenderCacheShards)
	}

	if cfg.RenderCacheMaxBytes == 0 {
		cfg.RenderCacheMaxBytes = defaultRenderCacheBytes(memory.TotalMemory())
	}

	return nil
}

// defaultRenderCacheBytes takes a thousandth of the machine memory,
// clamped to [64KiB, 64MiB]. Zero total means the size is unknown.
func defaultRenderCacheBytes(total uint64) uint64 {
	b := total / 1000
	if b < minRenderCacheBytes {
		return minRenderCacheBytes
	}

	if b > maxRenderCacheBytes {
		return maxRenderCacheBytes
	}

	return b
}
