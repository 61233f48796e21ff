package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/flex/repeat"
)

const defaultMaxIterations = 10000

type repeatOptions struct {
	count         int
	hasCount      bool
	while         int
	hasWhile      bool
	start         int
	step          int
	breakAt       int
	jumps         []string
	format        string
	maxIterations int
}

var repeatOpts repeatOptions

// repeatCmd: flex repeat
var repeatCmd = &cobra.Command{
	Use:   "repeat",
	Short: "Run the iteration engine and print every iteration state",
	Example: `  flex repeat --count 3
  flex repeat --count 10 --jump 1=5 --format json
  flex repeat --while 4 --start 2 --step 2 --break-at 3`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := repeatOpts
		opts.hasCount = cmd.Flags().Changed("count")
		opts.hasWhile = cmd.Flags().Changed("while")

		states, err := runRepeat(logger, opts)
		if err != nil {
			logger.Error("Error running repeat", zap.Error(err))
			os.Exit(1)
		}
		if err := writeStates(cmd.OutOrStdout(), states, opts.format); err != nil {
			logger.Error("Error writing states", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	f := repeatCmd.Flags()
	f.IntVar(&repeatOpts.count, "count", 0, "Count-driven mode: iterate while index < count")
	f.IntVar(&repeatOpts.while, "while", 0, "Predicate-driven mode: iterate while the loop number is <= N")
	f.IntVar(&repeatOpts.start, "start", 0, "Starting index")
	f.IntVar(&repeatOpts.step, "step", 1, "Index increment")
	f.IntVar(&repeatOpts.breakAt, "break-at", 0, "Break on this loop number")
	f.StringArrayVar(&repeatOpts.jumps, "jump", nil, "Jump from index to target, as idx=target (repeatable)")
	f.StringVar(&repeatOpts.format, "format", "text", "Output format: text, json or yaml")
	f.IntVar(&repeatOpts.maxIterations, "max-iterations", defaultMaxIterations, "Stop after this many iterations")
}

// buildRepeatConfig selects the mode from opts. Neither mode yields a nil
// Config, which repeat rejects with ErrInvalidConfig.
func buildRepeatConfig(opts repeatOptions) (repeat.Config, error) {
	switch {
	case opts.hasCount && opts.hasWhile:
		return nil, errors.New("--count and --while are mutually exclusive")
	case opts.hasCount:
		return repeat.Count(opts.count).From(opts.start).By(opts.step), nil
	case opts.hasWhile:
		limit := opts.while
		evaluated := 0
		return repeat.While(func() bool {
			evaluated++
			return evaluated <= limit
		}).From(opts.start).By(opts.step), nil
	default:
		return nil, nil
	}
}

// parseJumps parses "idx=target" pairs.
func parseJumps(specs []string) (map[int]int, error) {
	jumps := make(map[int]int, len(specs))
	for _, spec := range specs {
		from, to, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid jump %q, expected idx=target", spec)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("invalid jump index in %q: %w", spec, err)
		}
		target, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("invalid jump target in %q: %w", spec, err)
		}
		jumps[idx] = target
	}
	return jumps, nil
}

func runRepeat(logger *zap.Logger, opts repeatOptions) ([]repeat.State, error) {
	cfg, err := buildRepeatConfig(opts)
	if err != nil {
		return nil, err
	}
	jumps, err := parseJumps(opts.jumps)
	if err != nil {
		return nil, err
	}

	states := []repeat.State{}
	err = repeat.New(logger).Run(func(s repeat.State) repeat.Action {
		states = append(states, s)
		if s.LoopNumber == opts.breakAt {
			return repeat.Break()
		}
		if opts.maxIterations > 0 && s.LoopNumber >= opts.maxIterations {
			logger.Warn("Iteration limit reached", zap.Int("limit", opts.maxIterations))
			return repeat.Break()
		}
		if target, ok := jumps[s.Index]; ok {
			return repeat.JumpTo(target)
		}
		return repeat.Continue()
	}, cfg)
	if err != nil {
		return nil, err
	}
	return states, nil
}

func writeStates(w io.Writer, states []repeat.State, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, s := range states {
			_, err := fmt.Fprintf(w, "index=%d ordinal=%d first=%t last=%t loop=%d\n",
				s.Index, s.Ordinal, s.IsFirst, s.IsLast, s.LoopNumber)
			if err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(states); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
