package nolint

import (
	"fmt"
	"go/token"
	"regexp"
	"strings"
)

// nolintPattern matches a "# nolint" or "# nolint:rule1,rule2" comment at the
// end of a line. Group 1 holds everything after the colon, if any.
var nolintPattern = regexp.MustCompile(`(?:^|\s)#\s*nolint(:[^#]*)?\s*$`)

// Manager manages nolint scopes and checks if a position is nolinted.
type Manager struct {
	// scopes maps filename to a slice of nolint scopes.
	scopes map[string][]nolintScope
}

// nolintScope represents a range of lines where nolint applies.
type nolintScope struct {
	rules map[string]struct{}
	start token.Position
	end   token.Position
}

type sourceLine struct {
	text   string
	indent int
	// content reports whether the line carries data, not just a comment,
	// blank space or a document marker.
	content bool
}

// ParseSource parses nolint comments in a YAML or JSON data file and returns
// a Manager.
func ParseSource(filename string, source []byte) *Manager {
	manager := Manager{
		scopes: make(map[string][]nolintScope),
	}
	lines := splitLines(string(source))
	firstContent := firstContentLine(lines)

	for i := range lines {
		ns, err := parseComment(filename, lines, i, firstContent)
		if err != nil {
			// ignore lines without a valid nolint comment
			continue
		}
		manager.scopes[filename] = append(manager.scopes[filename], ns)
	}
	return &manager
}

// parseComment parses the nolint comment on line i, if any, and determines
// its scope. Line numbers are 1-based in the returned scope.
func parseComment(filename string, lines []sourceLine, i, firstContent int) (nolintScope, error) {
	var ns nolintScope

	m := nolintPattern.FindStringSubmatchIndex(lines[i].text)
	if m == nil {
		return ns, fmt.Errorf("no nolint comment")
	}

	// A nolint comment can either have a list of rules after a colon (:)
	// or if no rules are specified, it applies to all rules
	rest := ""
	if m[2] >= 0 {
		rest = strings.TrimSpace(strings.TrimPrefix(lines[i].text[m[2]:m[3]], ":"))
		if rest == "" {
			return ns, fmt.Errorf("invalid nolint comment: no rules specified after colon")
		}
	}
	ns.rules = parseIgnoreRuleNames(rest)

	at := func(idx int) token.Position {
		return token.Position{Filename: filename, Line: idx + 1, Column: 1}
	}

	// A comment in the leading comment block covers the entire file.
	if i < firstContent {
		ns.start = at(0)
		ns.end = at(len(lines) - 1)
		return ns, nil
	}

	// Inline comments cover their own line.
	if lines[i].content {
		ns.start = at(i)
		ns.end = at(i)
		return ns, nil
	}

	// Standalone comments cover the next content line and the block nested
	// under it.
	next := nextContentLine(lines, i+1)
	if next < 0 {
		ns.start = at(i)
		ns.end = at(i)
		return ns, nil
	}
	ns.start = at(i)
	ns.end = at(blockEnd(lines, next))
	return ns, nil
}

// parseIgnoreRuleNames parses the rule list from the nolint comment.
func parseIgnoreRuleNames(text string) map[string]struct{} {
	rulesMap := make(map[string]struct{})
	if text == "" {
		return rulesMap
	}
	rules := strings.Split(text, ",")
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rulesMap[rule] = struct{}{}
		}
	}
	return rulesMap
}

func splitLines(source string) []sourceLine {
	raw := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
	lines := make([]sourceLine, len(raw))
	for i, text := range raw {
		trimmed := strings.TrimSpace(text)
		content := trimmed != "" &&
			!strings.HasPrefix(trimmed, "#") &&
			trimmed != "---" &&
			trimmed != "..." &&
			!strings.HasPrefix(trimmed, "%")
		lines[i] = sourceLine{
			text:    text,
			indent:  len(text) - len(strings.TrimLeft(text, " \t")),
			content: content,
		}
	}
	return lines
}

func firstContentLine(lines []sourceLine) int {
	if idx := nextContentLine(lines, 0); idx >= 0 {
		return idx
	}
	return len(lines)
}

func nextContentLine(lines []sourceLine, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i].content {
			return i
		}
	}
	return -1
}

// blockEnd returns the last line belonging to the node that starts on line
// start: every following content line indented deeper, plus sequence items
// at the same indentation when start is a mapping key.
func blockEnd(lines []sourceLine, start int) int {
	head := lines[start]
	headIsItem := strings.HasPrefix(strings.TrimSpace(head.text), "-")
	end := start
	for i := start + 1; i < len(lines); i++ {
		l := lines[i]
		if !l.content {
			continue
		}
		nested := l.indent > head.indent ||
			(l.indent == head.indent && !headIsItem && strings.HasPrefix(strings.TrimSpace(l.text), "- "))
		if !nested {
			break
		}
		end = i
	}
	return end
}

// IsNolint checks if a given position and rule are nolinted.
func (m *Manager) IsNolint(pos token.Position, ruleName string) bool {
	scopes, exists := m.scopes[pos.Filename]
	if !exists {
		return false
	}
	for _, ns := range scopes {
		if pos.Line < ns.start.Line || pos.Line > ns.end.Line {
			continue
		}
		// If the rules list is empty, nolint applies to all rules
		if len(ns.rules) == 0 {
			return true
		}
		if _, exists := ns.rules[ruleName]; exists {
			return true
		}
	}
	return false
}
