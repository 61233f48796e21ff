package repeat

// State describes one iteration. It is a snapshot: changing it has no
// effect on the loop.
type State struct {
	// Index is the current index, starting at the configured start.
	Index int `json:"index" yaml:"index"`
	// Ordinal is Index+1.
	Ordinal int `json:"ordinal" yaml:"ordinal"`
	// IsFirst is true when Index equals the configured start.
	IsFirst bool `json:"isFirst" yaml:"isFirst"`
	// IsLast is true when Ordinal equals the count. Always false for
	// predicate-driven loops.
	IsLast bool `json:"isLast" yaml:"isLast"`
	// LoopNumber counts invocations from 1, regardless of index and step.
	LoopNumber int `json:"loopNumber" yaml:"loopNumber"`
}
