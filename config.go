package textable

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// DefaultPrecision is the rounding applied by [DefaultConfig].
const DefaultPrecision = 3

// Alignment controls column alignment in the tabular column specification.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
	AlignCenter
)

// Token returns the column specification letter: r, l or c.
func (a Alignment) Token() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "c"
	default:
		return "r"
	}
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	default:
		return "right"
	}
}

// ParseAlignment parses a token (r, l, c) or a name (right, left, center).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "right":
		return AlignRight, nil
	case "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre":
		return AlignCenter, nil
	default:
		return 0, fmt.Errorf("%w: unknown alignment %q", ErrConfig, s)
	}
}

// ParseAlignments parses a compact column specification such as "lrc".
// Vertical bars and whitespace are ignored.
func ParseAlignments(spec string) ([]Alignment, error) {
	var out []Alignment
	for _, r := range spec {
		if r == '|' || unicode.IsSpace(r) {
			continue
		}
		a, err := ParseAlignment(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// UnmarshalYAML accepts tokens and names.
func (a *Alignment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML writes the alignment token.
func (a Alignment) MarshalYAML() (any, error) { return a.Token(), nil }

// Config controls how a table is rendered. Build never modifies it.
type Config struct {
	// Caption and Label fill \caption{} and \label{}.
	Caption string `yaml:"caption"`
	Label   string `yaml:"label"`

	// Columns replaces the data's column labels with a flat list. Its length
	// must equal the column count.
	Columns []string `yaml:"columns,omitempty"`

	// IncludeIndex adds a left-aligned first column with the row labels.
	IncludeIndex bool `yaml:"index"`

	// IndexTitle heads the index column. Ignored without IncludeIndex.
	IndexTitle string `yaml:"index_title,omitempty"`

	// Precision is the number of decimal digits floats are rounded to.
	// Nil disables rounding.
	Precision *int `yaml:"precision"`

	// ThreePartTable wraps the tabular in a threeparttable with notes.
	ThreePartTable bool `yaml:"threeparttable,omitempty"`

	// Sideways rotates the table with sidewaystable and scales it down.
	Sideways bool `yaml:"sideways,omitempty"`

	// MissingFill replaces missing cells.
	MissingFill string `yaml:"missing_fill,omitempty"`

	// Alignments sets per-column alignment. Default: all right.
	Alignments []Alignment `yaml:"alignments,omitempty"`

	// Notes are the tablenotes entries of a threeparttable. Default: one
	// empty \item.
	Notes []string `yaml:"notes,omitempty"`

	// Escape escapes LaTeX special characters in labels and text cells.
	Escape bool `yaml:"escape,omitempty"`

	// AlignSource pads body cells so the column separators line up.
	AlignSource bool `yaml:"align_source,omitempty"`
}

// DefaultConfig returns a config with the index column on, precision
// [DefaultPrecision] and an empty missing fill.
func DefaultConfig() Config {
	return Config{
		IncludeIndex: true,
		Precision:    Digits(DefaultPrecision),
	}
}

// Digits returns a precision value for [Config].
func Digits(n int) *int { return &n }

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Precision != nil && *c.Precision < 0 {
		return fmt.Errorf("%w: negative precision %d", ErrConfig, *c.Precision)
	}
	for i, a := range c.Alignments {
		if a < AlignRight || a > AlignCenter {
			return fmt.Errorf("%w: alignment %d out of range (%d)", ErrConfig, i, int(a))
		}
	}
	return nil
}

// Option configures [NewConfig].
type Option func(*Config)

// NewConfig returns a validated config starting from [DefaultConfig].
func NewConfig(caption, label string, opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	cfg.Caption = caption
	cfg.Label = label
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithColumns overrides the column labels.
func WithColumns(labels ...string) Option {
	return func(c *Config) { c.Columns = slices.Clone(labels) }
}

// WithoutIndex drops the index column.
func WithoutIndex() Option {
	return func(c *Config) { c.IncludeIndex = false }
}

// WithIndexTitle sets the index column heading.
func WithIndexTitle(title string) Option {
	return func(c *Config) { c.IndexTitle = title }
}

// WithPrecision rounds floats to n decimal digits.
func WithPrecision(n int) Option {
	return func(c *Config) { c.Precision = Digits(n) }
}

// WithoutRounding renders numbers unrounded.
func WithoutRounding() Option {
	return func(c *Config) { c.Precision = nil }
}

// WithThreePartTable wraps the tabular in a threeparttable.
func WithThreePartTable(notes ...string) Option {
	return func(c *Config) {
		c.ThreePartTable = true
		c.Notes = slices.Clone(notes)
	}
}

// WithSideways rotates the table.
func WithSideways() Option {
	return func(c *Config) { c.Sideways = true }
}

// WithMissingFill sets the text used for missing cells.
func WithMissingFill(fill string) Option {
	return func(c *Config) { c.MissingFill = fill }
}

// WithAlignments sets per-column alignment.
func WithAlignments(aligns ...Alignment) Option {
	return func(c *Config) { c.Alignments = slices.Clone(aligns) }
}

// WithEscape escapes LaTeX special characters in labels and text cells.
func WithEscape() Option {
	return func(c *Config) { c.Escape = true }
}

// WithAlignedSource pads body cells so the separators line up.
func WithAlignedSource() Option {
	return func(c *Config) { c.AlignSource = true }
}

// LoadConfig reads a YAML config on top of [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %w", ErrConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
