package repeat

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/flex/number"
)

var (
	// ErrInvalidConfig is returned when a Config selects no usable mode.
	ErrInvalidConfig = errors.New("invalid repeat configuration")
	// ErrNilCallback is returned when Run is given a nil callback.
	ErrNilCallback = errors.New("nil repeat callback")
)

// Func is called once per iteration.
type Func func(State) Action

// StopReason tells why a loop ended.
type StopReason string

const (
	StopCountReached   StopReason = "count-reached"
	StopPredicateFalse StopReason = "predicate-false"
	StopBreak          StopReason = "break"
)

// Runner runs loops and reports how each one ended to its logger.
type Runner struct {
	logger *zap.Logger
}

// New creates a Runner. A nil logger discards everything.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

var defaultRunner = New(nil)

// Run drives fn with cfg using a Runner that does not log.
func Run(fn Func, cfg Config) error {
	return defaultRunner.Run(fn, cfg)
}

// Times calls fn n times with indexes 0 to n-1.
func Times(n int, fn func(State)) error {
	if fn == nil {
		return ErrNilCallback
	}
	return Run(func(s State) Action {
		fn(s)
		return Continue()
	}, Count(n))
}

// Run drives fn with cfg. Configuration errors are reported before fn is
// ever called; once the loop starts Run always returns nil.
func (r *Runner) Run(fn Func, cfg Config) error {
	if fn == nil {
		return ErrNilCallback
	}

	var (
		calls  int
		reason StopReason
	)
	switch c := cfg.(type) {
	case CountDriven:
		calls, reason = runCount(fn, c)
	case *CountDriven:
		if c == nil {
			return fmt.Errorf("%w: nil count config", ErrInvalidConfig)
		}
		calls, reason = runCount(fn, *c)
	case PredicateDriven:
		if c.Predicate == nil {
			return fmt.Errorf("%w: predicate is required", ErrInvalidConfig)
		}
		calls, reason = runPredicate(fn, c)
	case *PredicateDriven:
		if c == nil || c.Predicate == nil {
			return fmt.Errorf("%w: predicate is required", ErrInvalidConfig)
		}
		calls, reason = runPredicate(fn, *c)
	case nil:
		return fmt.Errorf("%w: one of count or predicate must be provided", ErrInvalidConfig)
	default:
		return fmt.Errorf("%w: unsupported config %T", ErrInvalidConfig, cfg)
	}

	r.logger.Debug("repeat finished",
		zap.String("mode", cfg.mode()),
		zap.Int("iterations", calls),
		zap.String("reason", string(reason)),
	)
	return nil
}

func runCount(fn Func, c CountDriven) (int, StopReason) {
	step := stepOrDefault(c.Step)
	index, loopNumber := c.Start, 1

	for index < c.Count {
		ordinal := number.IndexToNumber(index)
		action := fn(State{
			Index:      index,
			Ordinal:    ordinal,
			IsFirst:    index == c.Start,
			IsLast:     ordinal == c.Count,
			LoopNumber: loopNumber,
		})

		switch action.Kind {
		case ActionBreak:
			return loopNumber, StopBreak
		case ActionJump:
			index = action.Index
		default:
			index += step
		}
		loopNumber++
	}
	return loopNumber - 1, StopCountReached
}

func runPredicate(fn Func, c PredicateDriven) (int, StopReason) {
	step := stepOrDefault(c.Step)
	index, loopNumber := c.Start, 1

	for {
		if !c.Predicate() {
			return loopNumber - 1, StopPredicateFalse
		}

		action := fn(State{
			Index:      index,
			Ordinal:    number.IndexToNumber(index),
			IsFirst:    index == c.Start,
			IsLast:     false,
			LoopNumber: loopNumber,
		})

		switch action.Kind {
		case ActionBreak:
			return loopNumber, StopBreak
		case ActionJump:
			index = action.Index
		}
		index += step
		loopNumber++
	}
}
