package types

import "go/token"

// Issue categories.
const (
	// CategoryCheck marks a value that exists but fails its rule.
	CategoryCheck = "check"
	// CategoryRequired marks a required value that is missing.
	CategoryRequired = "required"
)

// Issue is a rule violation found in a data document.
type Issue struct {
	Rule     string
	Category string
	Filename string
	// Path is the dotted path the rule targets, e.g. "server.port".
	Path     string
	Message  string
	Note     string
	Severity Severity
	Start    token.Position
	End      token.Position
}

// ConfigRule is one entry of the `rules` map in the configuration file.
type ConfigRule struct {
	Path     string   `yaml:"path" json:"path"`
	Checks   []string `yaml:"checks,omitempty" json:"checks,omitempty"`
	Match    Match    `yaml:"match,omitempty" json:"match,omitempty"`
	Severity Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Enum     []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	Prefix   string   `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Message  string   `yaml:"message,omitempty" json:"message,omitempty"`
}

// Match tells how the results of a rule's checks are combined.
type Match string

const (
	// MatchAll passes when every check passes. It is the default.
	MatchAll Match = "all"
	// MatchAny passes when at least one check passes.
	MatchAny Match = "any"
	// MatchNone passes when no check passes.
	MatchNone Match = "none"
)

// Valid reports whether m is a known mode. The empty string counts as MatchAll.
func (m Match) Valid() bool {
	switch m {
	case "", MatchAll, MatchAny, MatchNone:
		return true
	default:
		return false
	}
}
