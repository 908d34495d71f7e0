package bvec

import "github.com/cockroachdb/errors"

const (
	// DefaultFanout is the maximum number of children of an internal node
	// for a zero Config.
	DefaultFanout = 32
	// DefaultLeafCap is the maximum number of elements of a leaf for a zero Config.
	DefaultLeafCap = 64

	minFanout  = 3
	minLeafCap = 2
)

// Config sets the shape of a vector's tree.
type Config struct {
	// Fanout is the maximum number of children per internal node (B).
	Fanout int
	// LeafCap is the maximum number of elements per leaf (C).
	LeafCap int
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{Fanout: DefaultFanout, LeafCap: DefaultLeafCap}
}

func (cfg Config) normalized() Config {
	if cfg.Fanout == 0 {
		cfg.Fanout = DefaultFanout
	}
	if cfg.LeafCap == 0 {
		cfg.LeafCap = DefaultLeafCap
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Fanout < minFanout {
		return errors.Wrapf(ErrInvalidConfig, "fanout must be >= %d, is %d", minFanout, cfg.Fanout)
	}
	if cfg.LeafCap < minLeafCap {
		return errors.Wrapf(ErrInvalidConfig, "leaf capacity must be >= %d, is %d", minLeafCap, cfg.LeafCap)
	}
	return nil
}

// MinChildren is the lower occupancy bound ceil(Fanout/2) of non-root internal nodes.
func (cfg Config) MinChildren() int {
	return (cfg.normalized().Fanout + 1) / 2
}

// MinLeafItems is the lower occupancy bound ceil(LeafCap/2) of non-root leaves.
func (cfg Config) MinLeafItems() int {
	return (cfg.normalized().LeafCap + 1) / 2
}
