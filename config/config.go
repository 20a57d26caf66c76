// Package config holds the small set of knobs threaded through every
// nanocas stage (radix, variable-naming mode, angle unit, literal
// rounding). Grounded on ivy's config/config.go: a struct of unexported
// fields behind nil-safe getters and setters that need a non-nil
// *Config, with defaults holding when the zero value (or a nil *Config)
// is read directly, so two independently configured pipelines
// can run side by side without sharing state (spec.md §5).
package config

// VariableMode selects how the lexer turns a run of lowercase letters
// into variable tokens (spec.md §4.5).
type VariableMode int

const (
	// MultiChar treats an entire run of lowercase letters as one
	// variable name; adjacent variables require an explicit '*'.
	MultiChar VariableMode = iota
	// OneChar treats each lowercase letter as its own variable;
	// consecutive letters imply multiplication.
	OneChar
)

// AngleUnit selects the unit the evaluator's trigonometric functions
// operate in (spec.md §4.7).
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// Config holds the configuration of one lexer/parser/evaluator pipeline.
// The zero value is valid and holds the defaults: radix 1000,
// multi-character variables, radians.
type Config struct {
	radix        int
	radixSet     bool
	variableMode VariableMode
	angleUnit    AngleUnit
	roundDigits  int
	roundSet     bool
	debug        map[string]bool
}

// New returns a Config with the given radix (a positive power of 10) and
// otherwise-default settings.
func New(radix int) *Config {
	return &Config{radix: radix, radixSet: true}
}

// Radix returns the configured bignum radix, defaulting to 1000.
func (c *Config) Radix() int {
	if c == nil || !c.radixSet {
		return 1000
	}
	return c.radix
}

// SetRadix overrides the bignum radix.
func (c *Config) SetRadix(radix int) {
	c.radix = radix
	c.radixSet = true
}

// VariableMode returns the configured variable-naming mode, defaulting to
// MultiChar.
func (c *Config) VariableMode() VariableMode {
	if c == nil {
		return MultiChar
	}
	return c.variableMode
}

// SetVariableMode overrides the variable-naming mode.
func (c *Config) SetVariableMode(m VariableMode) {
	c.variableMode = m
}

// AngleUnit returns the configured trigonometric angle unit, defaulting
// to Radians.
func (c *Config) AngleUnit() AngleUnit {
	if c == nil {
		return Radians
	}
	return c.angleUnit
}

// SetAngleUnit overrides the trigonometric angle unit.
func (c *Config) SetAngleUnit(u AngleUnit) {
	c.angleUnit = u
}

// RoundDecimals reports the fixed number of decimals the lexer should
// round numeric literals to, and whether rounding is enabled at all.
func (c *Config) RoundDecimals() (int, bool) {
	if c == nil {
		return 0, false
	}
	return c.roundDigits, c.roundSet
}

// SetRoundDecimals enables rounding of numeric literals to n decimals.
func (c *Config) SetRoundDecimals(n int) {
	c.roundDigits = n
	c.roundSet = true
}

// ClearRoundDecimals disables literal rounding.
func (c *Config) ClearRoundDecimals() {
	c.roundDigits = 0
	c.roundSet = false
}

// Debug reports whether a named debug flag is set.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug sets or clears a named debug flag.
func (c *Config) SetDebug(name string, on bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = on
}
