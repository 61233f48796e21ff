// Package docpath resolves dotted paths such as "server.ports.0" against
// YAML node trees.
package docpath

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/flex/common"
	"github.com/gnoswap-labs/flex/number"
	"github.com/gnoswap-labs/flex/repeat"
	"github.com/gnoswap-labs/flex/strutil"
)

const separator = "."

// Split breaks path into segments. The empty path and "." address the root.
func Split(path string) []string {
	path = strings.TrimSpace(path)
	if strutil.IsEmptyOrWhitespaces(strings.Trim(path, separator)) {
		return nil
	}
	return strings.Split(strings.Trim(path, separator), separator)
}

// Resolve walks node along path. It returns the addressed node and true.
// When a segment is missing it returns false and the node a miss should be
// reported at: the key of the deepest segment that resolved, the element
// for an index segment, or the root when nothing resolved.
func Resolve(node *yaml.Node, path string) (*yaml.Node, bool) {
	current := unwrap(node)
	if current == nil {
		return nil, false
	}

	segments := Split(path)
	anchor := current
	found := true
	err := repeat.Run(func(s repeat.State) repeat.Action {
		key, value := child(current, segments[s.Index])
		if value == nil {
			found = false
			return repeat.Break()
		}
		anchor, current = key, value
		return repeat.Continue()
	}, repeat.Count(len(segments)))
	if err != nil {
		return nil, false
	}

	if !found {
		return anchor, false
	}
	return current, true
}

// Value decodes node into a plain Go value. Explicit nulls decode to
// common.Null so they stay distinguishable from missing values.
func Value(node *yaml.Node) (any, error) {
	node = unwrap(node)
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return common.Null, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// child returns the node that positions segment in the source and its value.
func child(node *yaml.Node, segment string) (*yaml.Node, *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == segment {
				return node.Content[i], unwrap(node.Content[i+1])
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(segment)
		if err != nil || !number.IsDefinedIndex(idx) || idx >= len(node.Content) {
			return nil, nil
		}
		return node.Content[idx], unwrap(node.Content[idx])
	}
	return nil, nil
}

// unwrap skips document wrappers and follows aliases.
func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}
