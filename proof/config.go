package proof

import (
	"fmt"

	"github.com/arloliu/friproof/errs"
	"github.com/arloliu/friproof/internal/options"
)

// DefaultFieldElementWidth is the field element width used when WithFieldElementWidth is not given.
const DefaultFieldElementWidth = 32

// Config is the immutable codec configuration: the field element width and the
// register counts of the computation the proof was generated for.
//
// A Config is built once with NewConfig and copied by value into every Codec.
type Config struct {
	fieldElementWidth int
	stateWidth        int
	secretInputCount  int
	constraintCount   int
}

// Option configures a Config under construction.
type Option = options.Option[*Config]

// NewConfig builds a validated Config from options.
//
// The state width must be set with WithStateWidth; the field element width
// defaults to DefaultFieldElementWidth and the other counts default to zero.
//
// Returns:
//   - Config: the validated configuration
//   - error: wrapping ErrInvalidConfig if an option or the final configuration is rejected
func NewConfig(opts ...Option) (Config, error) {
	cfg := &Config{fieldElementWidth: DefaultFieldElementWidth}
	if err := options.Apply(cfg, opts...); err != nil {
		return Config{}, err
	}

	if cfg.stateWidth < 1 {
		return Config{}, fmt.Errorf("%w: state width must be at least 1", errs.ErrInvalidConfig)
	}

	return *cfg, nil
}

// WithFieldElementWidth sets the number of bytes per field element.
func WithFieldElementWidth(width int) Option {
	return options.New(func(c *Config) error {
		if width < 1 {
			return fmt.Errorf("field element width must be at least 1, got %d", width)
		}
		c.fieldElementWidth = width

		return nil
	})
}

// WithStateWidth sets the number of execution trace registers.
func WithStateWidth(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("state width must be at least 1, got %d", n)
		}
		c.stateWidth = n

		return nil
	})
}

// WithSecretInputCount sets the number of secret input registers.
func WithSecretInputCount(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("secret input count cannot be negative, got %d", n)
		}
		c.secretInputCount = n

		return nil
	})
}

// WithConstraintCount sets the number of transition constraints.
func WithConstraintCount(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("constraint count cannot be negative, got %d", n)
		}
		c.constraintCount = n

		return nil
	})
}

// FieldElementWidth returns the number of bytes per field element.
func (c Config) FieldElementWidth() int { return c.fieldElementWidth }

// StateWidth returns the number of execution trace registers.
func (c Config) StateWidth() int { return c.stateWidth }

// SecretInputCount returns the number of secret input registers.
func (c Config) SecretInputCount() int { return c.secretInputCount }

// ConstraintCount returns the number of transition constraints.
func (c Config) ConstraintCount() int { return c.constraintCount }

// RowElementCount returns the number of field elements in an evaluation row
// carrying bCount boundary values.
func (c Config) RowElementCount(bCount int) int {
	return c.stateWidth + c.secretInputCount + bCount + c.constraintCount
}

// RowWidth returns the byte length of an evaluation row carrying bCount boundary values.
func (c Config) RowWidth(bCount int) int {
	return c.RowElementCount(bCount) * c.fieldElementWidth
}

// ValueRecordWidth returns the byte width of one evaluation leaf value in a proof
// whose branching factor is bpc: (stateWidth + constraintCount + bpc) field elements.
func (c Config) ValueRecordWidth(bpc uint8) int {
	return (c.stateWidth + c.constraintCount + int(bpc)) * c.fieldElementWidth
}
