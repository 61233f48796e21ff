package formatter

import (
	"go/token"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnoswap-labs/flex/internal"
	tt "github.com/gnoswap-labs/flex/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var service = &internal.SourceCode{
	Lines: []string{
		"name: flex",
		"server:",
		"  port: -80",
		"  host: \"  \"",
		"",
	},
}

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()

	issues := []tt.Issue{
		{
			Rule:     "port",
			Category: tt.CategoryCheck,
			Filename: "service.yaml",
			Start:    token.Position{Line: 3, Column: 9},
			End:      token.Position{Line: 3, Column: 12},
			Message:  "value -80 does not satisfy checks [number.positive] (match all)",
			Note:     "at server.port",
		},
		{
			Rule:     "host",
			Category: tt.CategoryCheck,
			Severity: tt.SeverityWarning,
			Filename: "service.yaml",
			Start:    token.Position{Line: 4, Column: 9},
			End:      token.Position{Line: 4, Column: 13},
			Message:  "host must not be blank",
		},
	}

	expected := `error: port
 --> service.yaml:3:9
  |
3 | port: -80
  |       ~~~
  = value -80 does not satisfy checks [number.positive] (match all)
Note: at server.port

warning: host
 --> service.yaml:4:9
  |
4 | host: "  "
  |       ~~~~
  = host must not be blank

`

	result := GenerateFormattedIssue(issues, service)
	assert.Equal(t, expected, result, "Formatted output does not match expected")
}

func TestGenerateFormattedRequiredIssue(t *testing.T) {
	t.Parallel()

	issues := []tt.Issue{
		{
			Rule:     "timeout",
			Category: tt.CategoryRequired,
			Severity: tt.SeverityInfo,
			Filename: "service.yaml",
			Start:    token.Position{Line: 3, Column: 3},
			End:      token.Position{Line: 3, Column: 4},
			Message:  `missing required value at "server.timeout"`,
			Note:     "at server.timeout",
		},
	}

	expected := `info: timeout
 --> service.yaml:3:3
  = missing required value at "server.timeout"
Note: at server.timeout

`

	result := GenerateFormattedIssue(issues, service)
	assert.Equal(t, expected, result)
}

func TestFormatOutOfRangeIssue(t *testing.T) {
	t.Parallel()

	issues := []tt.Issue{
		{
			Rule:     "port",
			Filename: "service.yaml",
			Start:    token.Position{Line: 40, Column: 1},
			End:      token.Position{Line: 40, Column: 2},
			Message:  "stale position",
		},
	}

	expected := `error: port
  --> service.yaml:40:1
   |
   | stale position

`

	assert.Equal(t, expected, GenerateFormattedIssue(issues, service))
	assert.Equal(t, expected, GenerateFormattedIssue(issues, nil))
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line   string
		column int
		want   int
	}{
		{"port: 1", 1, 0},
		{"port: 1", 7, 6},
		{"\tport: 1", 2, 8},
		{"  \tx", 4, 8},
		{"x", -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateVisualColumn(tt.line, tt.column), "%q:%d", tt.line, tt.column)
	}
}

func TestFindCommonIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  ", findCommonIndent([]string{"    a", "", "  b"}))
	assert.Equal(t, "", findCommonIndent([]string{"a", "  b"}))
	assert.Equal(t, "", findCommonIndent(nil))
}
