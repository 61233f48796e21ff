// Package checks maps check names used in configuration files to the
// predicates of the flex packages.
package checks

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/gnoswap-labs/flex/boolean"
	"github.com/gnoswap-labs/flex/common"
	"github.com/gnoswap-labs/flex/number"
	"github.com/gnoswap-labs/flex/object"
	"github.com/gnoswap-labs/flex/strutil"
)

// ErrUnknownCheck is returned by Lookup for names with no registered check.
var ErrUnknownCheck = errors.New("unknown check")

// NegationPrefix inverts a check: "!string.blank" passes when
// "string.blank" fails.
const NegationPrefix = "!"

// Check is a named predicate over a decoded document value.
type Check struct {
	Name        string
	Description string
	Fn          func(value any) bool
}

// Test runs the check against value.
func (c Check) Test(value any) bool {
	return c.Fn(value)
}

type checkMap map[string]Check

var registry = checkMap{}

func register(name, description string, fn func(any) bool) {
	registry[name] = Check{Name: name, Description: description, Fn: fn}
}

func init() {
	register("defined", "value is neither null nor missing", common.IsDefined)
	register("null", "value is an explicit null", common.IsNull)
	register("undefined", "value is missing", common.IsUndefined)
	register("nullish", "value is null or missing", common.IsNullish)
	register("truthy", "value is truthy", boolean.IsTruthy)
	register("falsy", "value is falsy", boolean.IsFalsy)

	register("boolean", "value is a boolean", boolean.IsBoolean)
	register("true", "value is the boolean true", boolean.IsTrue)
	register("false", "value is the boolean false", boolean.IsFalse)

	register("number", "value is a number", number.IsNumber)
	register("number.positive", "value is a number > 0", numeric(number.IsPositive[float64]))
	register("number.negative", "value is a number < 0", numeric(number.IsNegative[float64]))
	register("number.zero", "value is the number 0", numeric(number.IsZero[float64]))
	register("number.non-negative", "value is a number >= 0", numeric(number.IsNonNegative[float64]))
	register("number.non-positive", "value is a number <= 0", numeric(number.IsNonPositive[float64]))
	register("number.integer", "value is a whole number", numeric(number.IsInteger[float64]))
	register("number.float", "value is a number with a fractional part", numeric(number.IsFloat[float64]))
	register("number.index", "value is a valid 0-based index", func(v any) bool {
		return numeric(number.IsInteger[float64])(v) && numeric(number.IsDefinedIndex[float64])(v)
	})

	register("string", "value is a string", strutil.IsString)
	register("string.empty", "value is the empty string", strutil.IsEmptyString)
	register("string.whitespaces", "value is a non-empty string of whitespace", text(strutil.IsWhitespaces))
	register("string.blank", "value is an empty or whitespace-only string", text(strutil.IsEmptyOrWhitespaces))
	register("string.version", "value is a version string such as 1.2.0 or v2.0.0-rc.1", text(isVersion))

	register("object", "value is a mapping", object.IsObject)
}

// numeric adapts a float predicate: non-numbers fail.
func numeric(pred func(float64) bool) func(any) bool {
	return func(v any) bool {
		if !number.IsNumber(v) {
			return false
		}
		rv := reflect.ValueOf(v)
		var f float64
		switch {
		case rv.CanInt():
			f = float64(rv.Int())
		case rv.CanUint():
			f = float64(rv.Uint())
		default:
			f = rv.Float()
		}
		return pred(f)
	}
}

// text adapts a string predicate: non-strings fail.
func text(pred func(string) bool) func(any) bool {
	return func(v any) bool {
		if !strutil.IsString(v) {
			return false
		}
		return pred(reflect.ValueOf(v).String())
	}
}

func isVersion(s string) bool {
	_, err := version.NewVersion(s)
	return err == nil
}

// Lookup returns the check registered under name. A name starting with
// NegationPrefix yields the inverted check.
func Lookup(name string) (Check, error) {
	base, negated := strings.CutPrefix(strings.TrimSpace(name), NegationPrefix)
	c, ok := registry[base]
	if !ok {
		return Check{}, fmt.Errorf("%w %q", ErrUnknownCheck, name)
	}
	if !negated {
		return c, nil
	}
	return Check{
		Name:        NegationPrefix + c.Name,
		Description: "not: " + c.Description,
		Fn: func(v any) bool {
			return boolean.Not(c.Fn(v))
		},
	}, nil
}

// All returns every registered check sorted by name.
func All() []Check {
	all := make([]Check, 0, len(registry))
	for _, c := range registry {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}
