package internal

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/flex/common"
	"github.com/gnoswap-labs/flex/internal/checks"
	"github.com/gnoswap-labs/flex/internal/docpath"
	tt "github.com/gnoswap-labs/flex/internal/types"
	"github.com/gnoswap-labs/flex/object"
	"github.com/gnoswap-labs/flex/strutil"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on one parsed document and returns a slice of Issues.
	Check(filename string, root *yaml.Node) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
}

// PathRule checks the value found at a dotted path.
type PathRule struct {
	name     string
	path     string
	match    tt.Match
	severity tt.Severity
	required bool
	message  string
	checks   []checks.Check
	enum     []any
	prefix   string
}

// NewPathRule compiles a configuration entry.
func NewPathRule(name string, cfg tt.ConfigRule) (*PathRule, error) {
	if !cfg.Match.Valid() {
		return nil, fmt.Errorf("rule %q: unknown match mode %q", name, cfg.Match)
	}
	match := cfg.Match
	if match == "" {
		match = tt.MatchAll
	}

	r := &PathRule{
		name:     name,
		path:     cfg.Path,
		match:    match,
		severity: cfg.Severity,
		required: cfg.Required,
		message:  cfg.Message,
		prefix:   cfg.Prefix,
	}
	for _, n := range cfg.Checks {
		c, err := checks.Lookup(n)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		r.checks = append(r.checks, c)
	}
	for _, v := range cfg.Enum {
		if !isScalar(v) {
			return nil, fmt.Errorf("rule %q: enum values must be scalars, got %T", name, v)
		}
		r.enum = append(r.enum, v)
	}
	return r, nil
}

func (r *PathRule) Name() string {
	return r.name
}

func (r *PathRule) Severity() tt.Severity {
	return r.severity
}

func (r *PathRule) Check(filename string, root *yaml.Node) ([]tt.Issue, error) {
	node, found := docpath.Resolve(root, r.path)
	if !found {
		if !r.required {
			return nil, nil
		}
		msg := fmt.Sprintf("missing required value at %q", r.path)
		return []tt.Issue{r.newIssue(filename, node, tt.CategoryRequired, msg)}, nil
	}

	value, err := docpath.Value(node)
	if err != nil {
		return nil, fmt.Errorf("rule %q: decoding %q: %w", r.name, r.path, err)
	}

	var reasons []string
	checksPassed := r.checksPass(value)
	if !checksPassed {
		reasons = append(reasons, fmt.Sprintf("checks [%s] (match %s)", strings.Join(r.checkNames(), ", "), r.match))
	}
	enumPassed := r.enumPass(value)
	if !enumPassed {
		reasons = append(reasons, fmt.Sprintf("one of %v", r.enum))
	}
	prefixPassed := r.prefixPass(value)
	if !prefixPassed {
		reasons = append(reasons, fmt.Sprintf("prefix %q", r.prefix))
	}

	if common.AllOf(checksPassed, enumPassed, prefixPassed) {
		return nil, nil
	}
	msg := fmt.Sprintf("value %s does not satisfy %s", describe(value), strings.Join(reasons, ", "))
	return []tt.Issue{r.newIssue(filename, node, tt.CategoryCheck, msg)}, nil
}

func (r *PathRule) checksPass(value any) bool {
	if len(r.checks) == 0 {
		return true
	}
	results := make([]any, len(r.checks))
	for i, c := range r.checks {
		results[i] = c.Test(value)
	}
	switch r.match {
	case tt.MatchAny:
		return common.OneOfIsTrue(results...)
	case tt.MatchNone:
		return common.NoneOfIsTrue(results...)
	default:
		return common.AllOfAreTrue(results...)
	}
}

func (r *PathRule) enumPass(value any) bool {
	if len(r.enum) == 0 {
		return true
	}
	// comparing interfaces holding maps or slices panics
	return isScalar(value) && common.IsOneOf(value, r.enum)
}

func (r *PathRule) prefixPass(value any) bool {
	if r.prefix == "" {
		return true
	}
	s, ok := common.As[string](value)
	return ok && strutil.IsPrefixed(s, r.prefix)
}

func (r *PathRule) checkNames() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.Name
	}
	return names
}

func (r *PathRule) newIssue(filename string, node *yaml.Node, category, msg string) tt.Issue {
	if r.message != "" {
		msg = r.message
	}
	start, end := span(filename, node)
	return tt.Issue{
		Rule:     r.name,
		Category: category,
		Filename: filename,
		Path:     r.path,
		Message:  msg,
		Note:     fmt.Sprintf("at %s", displayPath(r.path)),
		Severity: r.severity,
		Start:    start,
		End:      end,
	}
}

// span returns the source range of node. Scalars cover their text, other
// nodes only their first column.
func span(filename string, node *yaml.Node) (token.Position, token.Position) {
	start := token.Position{Filename: filename, Line: 1, Column: 1}
	if node != nil && node.Line > 0 {
		start.Line, start.Column = node.Line, node.Column
	}
	end := start
	end.Column++
	if node != nil && node.Kind == yaml.ScalarNode && len(node.Value) > 0 && !strings.Contains(node.Value, "\n") {
		width := len(node.Value)
		if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
			width += 2
		}
		end.Column = start.Column + width
	}
	return start, end
}

func displayPath(path string) string {
	if len(docpath.Split(path)) == 0 {
		return "<root>"
	}
	return path
}

func describe(value any) string {
	switch {
	case common.IsUndefined(value):
		return "<missing>"
	case common.IsNull(value):
		return "null"
	case object.IsObject(value):
		return "<mapping>"
	}
	if s, ok := common.As[string](value); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(value)
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Func, reflect.Struct, reflect.Chan, reflect.Pointer:
		return false
	default:
		return true
	}
}
