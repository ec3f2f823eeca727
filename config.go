package probemap

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the starting table length of New and the length
	// Clear restores.
	DefaultCapacity = 9
	// DefaultMaxLoadFactor is the load above which Set regrows the table.
	DefaultMaxLoadFactor = 0.67
)

// Config holds the tunables of a Map. It can be decoded from TOML:
//
//	initial-capacity = 64
//	max-load-factor = 0.5
type Config struct {
	InitialCapacity int     `toml:"initial-capacity"`
	MaxLoadFactor   float64 `toml:"max-load-factor"`
}

// DefaultConfig returns the configuration New uses.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultCapacity,
		MaxLoadFactor:   DefaultMaxLoadFactor,
	}
}

// LoadConfig reads a TOML file. Missing fields take their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrapf(ErrInvalidArgument, "unknown config keys in %s: %s",
			path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the capacity is positive and the load factor lies in
// (0, 1].
func (c Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "initial capacity %d must be positive", c.InitialCapacity)
	}
	return validateLoadFactor(c.MaxLoadFactor)
}

func validateLoadFactor(f float64) error {
	if !(f > 0 && f <= 1) {
		return errors.Wrapf(ErrInvalidArgument, "max load factor %v must be in (0, 1]", f)
	}
	return nil
}

type options struct {
	logger        *zap.Logger
	maxLoadFactor float64
}

// Option configures a Map.
type Option func(*options)

// WithLogger sets the logger used to report table resizes.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxLoadFactor overrides DefaultMaxLoadFactor.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		o.maxLoadFactor = f
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{
		logger:        zap.NewNop(),
		maxLoadFactor: DefaultMaxLoadFactor,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateLoadFactor(o.maxLoadFactor); err != nil {
		return options{}, err
	}
	return o, nil
}
