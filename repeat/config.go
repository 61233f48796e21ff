package repeat

// Config selects how a loop is driven. It is implemented by CountDriven and
// PredicateDriven only.
type Config interface {
	mode() string
}

// CountDriven runs while the index is below Count.
type CountDriven struct {
	Count int
	// Start is the first index.
	Start int
	// Step is added to the index after each iteration. Nil means 1.
	Step *int
}

// PredicateDriven runs while Predicate returns true. Predicate is evaluated
// before every iteration, including the first.
type PredicateDriven struct {
	Predicate func() bool
	Start     int
	// Step is added to the index after each iteration. Nil means 1; an
	// explicit 0 keeps the index in place.
	Step *int
}

func (CountDriven) mode() string     { return "count" }
func (PredicateDriven) mode() string { return "predicate" }

// Count returns a count-driven config running n times from index 0.
func Count(n int) CountDriven {
	return CountDriven{Count: n}
}

// While returns a predicate-driven config starting at index 0.
func While(predicate func() bool) PredicateDriven {
	return PredicateDriven{Predicate: predicate}
}

// From returns a copy of c starting at index start.
func (c CountDriven) From(start int) CountDriven {
	c.Start = start
	return c
}

// By returns a copy of c advancing by step.
func (c CountDriven) By(step int) CountDriven {
	c.Step = &step
	return c
}

// From returns a copy of c starting at index start.
func (c PredicateDriven) From(start int) PredicateDriven {
	c.Start = start
	return c
}

// By returns a copy of c advancing by step.
func (c PredicateDriven) By(step int) PredicateDriven {
	c.Step = &step
	return c
}

const defaultStep = 1

func stepOrDefault(step *int) int {
	if step == nil {
		return defaultStep
	}
	return *step
}
