package internal

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/flex/internal/checks"
	"github.com/gnoswap-labs/flex/internal/nolint"
	tt "github.com/gnoswap-labs/flex/internal/types"
)

// ErrUnknownCheck is returned by NewEngine when a rule names a check that
// does not exist.
var ErrUnknownCheck = checks.ErrUnknownCheck

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	rules        map[string]LintRule
}

// NewEngine creates a new lint engine from the configured rules. Rules with
// severity off are skipped.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]LintRule, len(rules))
	for name, cfg := range rules {
		if cfg.Severity == tt.SeverityOff {
			continue
		}
		r, err := NewPathRule(name, cfg)
		if err != nil {
			return err
		}
		e.rules[name] = r
	}
	return nil
}

// Rules returns the names of the active rules, sorted.
func (e *Engine) Rules() []string {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.RunSource(filename, source)
}

// RunSource applies all lint rules to every document in source.
func (e *Engine) RunSource(filename string, source []byte) ([]tt.Issue, error) {
	docs, err := parseDocuments(source)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	nolintMgr := nolint.ParseSource(filename, source)

	var g errgroup.Group
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		r := rule
		g.Go(func() error {
			var found []tt.Issue
			for _, doc := range docs {
				issues, err := r.Check(filename, doc)
				if err != nil {
					return err
				}
				found = append(found, issues...)
			}

			nolinted := filterNolintIssues(nolintMgr, found)

			mu.Lock()
			allIssues = append(allIssues, nolinted...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortIssues(allIssues)
	return allIssues, nil
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// parseDocuments decodes every YAML document in source. JSON input is a
// single YAML document. An empty source yields one empty document so
// required rules still report.
func parseDocuments(source []byte) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(source))
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	if len(docs) == 0 {
		docs = append(docs, &yaml.Node{})
	}
	return docs, nil
}

// filterNolintIssues filters issues based on nolint comments.
func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		pos := token.Position{
			Filename: issue.Filename,
			Line:     issue.Start.Line,
		}
		if !mgr.IsNolint(pos, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

func sortIssues(issues []tt.Issue) {
	sort.Slice(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
