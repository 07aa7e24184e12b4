package extpg

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config selects the types a Map registers and how it logs.
//
// A config file looks like:
//
//	log_level: debug
//	types: [date, int4range, Int4Multirange]
//	box_array_delimiter: ";"
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`

	// Types names the types to register by Go or PostgreSQL name, case insensitively. Empty means all of
	// DefaultTypes.
	Types []string `yaml:"types,omitempty"`

	BoxArrayDelimiter string `yaml:"box_array_delimiter"`
}

// DefaultConfig returns the default configuration: every type, errors logged, box arrays delimited by ';'.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          LogLevelError,
		BoxArrayDelimiter: ";",
	}
}

// ParseConfig reads a YAML config from r. Fields absent from r keep their DefaultConfig values.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.BoxArrayDelimiter) != 1 {
		return fmt.Errorf("invalid config: box_array_delimiter must be a single character, got %q", c.BoxArrayDelimiter)
	}
	_, err := c.SelectedTypes()
	return err
}

// SelectedTypes returns the types named by c.Types, in DefaultTypes order.
func (c *Config) SelectedTypes() ([]*Type, error) {
	all := DefaultTypes()
	for _, t := range all {
		if t.Name == "Box" && c.BoxArrayDelimiter != "" {
			t.ArrayDelimiter = c.BoxArrayDelimiter
		}
	}
	if len(c.Types) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(c.Types))
	for _, name := range c.Types {
		want[strings.ToLower(name)] = false
	}

	var types []*Type
	for _, t := range all {
		for _, name := range []string{strings.ToLower(t.Name), t.SQLName} {
			if _, ok := want[name]; ok {
				want[name] = true
				types = append(types, t)
				break
			}
		}
	}

	for _, name := range c.Types {
		if !want[strings.ToLower(name)] {
			return nil, fmt.Errorf("invalid config: unknown type %q", name)
		}
	}
	return types, nil
}

// NewMap returns a Map with every type selected by cfg registered. A nil cfg is DefaultConfig.
func NewMap(cfg *Config, logger Logger) (*Map, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	types, err := cfg.SelectedTypes()
	if err != nil {
		return nil, err
	}

	m := &Map{Logger: logger, LogLevel: cfg.LogLevel}
	Register(m, types...)
	return m, nil
}

// UnmarshalYAML reads a level name such as "debug".
func (ll *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	lvl, err := LogLevelFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", err, s)
	}
	*ll = lvl
	return nil
}

func (ll LogLevel) MarshalYAML() (any, error) {
	return ll.String(), nil
}
