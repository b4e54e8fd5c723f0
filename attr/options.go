package attr

import "fmt"

// DefaultMaxDepth is the nesting depth limit applied when no WithMaxDepth
// option is given. It bounds recursion through maps and lists so adversarial
// input cannot grow the call stack without limit.
const DefaultMaxDepth = 32

type config struct {
	maxDepth int
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// Option configures an Encoder or Decoder.
type Option func(*config) error

// WithMaxDepth overrides the nesting depth limit. A document with no nested
// maps or lists has depth 1.
func WithMaxDepth(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("invalid max depth: %d", n)
		}
		cfg.maxDepth = n

		return nil
	}
}
