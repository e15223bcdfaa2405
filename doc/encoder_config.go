package doc

import (
	"fmt"

	"github.com/arloliu/sbson/format"
	"github.com/arloliu/sbson/internal/chd"
	"github.com/arloliu/sbson/internal/options"
)

// Default thresholds of the Auto map strategy and the CHD build ceiling.
const (
	// DefaultCHDThreshold is the entry count at which Auto switches a map
	// from comparison-based layouts to the CHD perfect hash.
	DefaultCHDThreshold = 10000

	// DefaultEytzingerThreshold is the entry count above which Auto prefers
	// the Eytzinger layout over the plain sorted layout. Below it the whole
	// descriptor table fits a few cache lines and sorted binary search is
	// already optimal.
	DefaultEytzingerThreshold = 16

	// DefaultCHDMaxAttempts is the default seed attempt ceiling of CHD
	// construction.
	DefaultCHDMaxAttempts = chd.DefaultMaxAttempts
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithMapStrategy sets the encoder-wide map strategy. Individual maps can
// still override it via Map.Strategy.
func WithMapStrategy(strategy format.MapStrategy) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !strategy.IsValid() {
			return fmt.Errorf("invalid map strategy: %v", strategy)
		}
		e.strategy = strategy

		return nil
	})
}

// WithCHDThreshold sets the entry count at which the Auto strategy switches
// to CHD. Maps with fewer entries use the sorted or Eytzinger layout.
func WithCHDThreshold(threshold int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if threshold < 1 {
			return fmt.Errorf("CHD threshold must be positive, got %d", threshold)
		}
		e.chdThreshold = threshold

		return nil
	})
}

// WithEytzingerThreshold sets the entry count above which the Auto strategy
// prefers the Eytzinger layout over the plain sorted layout.
func WithEytzingerThreshold(threshold int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if threshold < 0 {
			return fmt.Errorf("eytzinger threshold must be non-negative, got %d", threshold)
		}
		e.eytzingerThreshold = threshold

		return nil
	})
}

// WithCHDMaxAttempts sets the seed attempt ceiling of CHD construction.
// Lower values bound encode time more tightly but make construction failure
// more likely on degenerate key sets.
func WithCHDMaxAttempts(attempts int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if attempts < 1 {
			return fmt.Errorf("CHD attempt ceiling must be positive, got %d", attempts)
		}
		e.chdMaxAttempts = attempts

		return nil
	})
}

// WithSizeLimit caps the total encoded document size in bytes. Zero (the
// default) disables the cap. Exceeding it fails Encode with
// ErrSizeLimitExceeded and no buffer is returned.
func WithSizeLimit(limit int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if limit < 0 {
			return fmt.Errorf("size limit must be non-negative, got %d", limit)
		}
		e.sizeLimit = limit

		return nil
	})
}
