package repeat

import "fmt"

// ActionKind tells the loop what to do after a callback returns.
type ActionKind int

const (
	// ActionContinue advances the index by the step.
	ActionContinue ActionKind = iota
	// ActionBreak stops the loop.
	ActionBreak
	// ActionJump replaces the index with Action.Index.
	ActionJump
)

func (k ActionKind) String() string {
	switch k {
	case ActionContinue:
		return "Continue"
	case ActionBreak:
		return "Break"
	case ActionJump:
		return "Jump"
	default:
		return "?"
	}
}

// Action is the answer of a callback.
type Action struct {
	Kind  ActionKind
	Index int // valid for ActionJump
}

// Continue lets the loop advance normally.
func Continue() Action {
	return Action{Kind: ActionContinue}
}

// Break stops the loop without advancing.
func Break() Action {
	return Action{Kind: ActionBreak}
}

// JumpTo makes index the base of the next iteration.
func JumpTo(index int) Action {
	return Action{Kind: ActionJump, Index: index}
}

func (a Action) String() string {
	if a.Kind == ActionJump {
		return fmt.Sprintf("Jump(%d)", a.Index)
	}
	return a.Kind.String()
}
