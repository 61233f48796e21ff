// Package repeat runs a callback repeatedly, either a fixed number of times
// or for as long as a predicate holds.
//
// Each invocation receives a [State] describing the current iteration and
// answers with an [Action]:
//
//   - [Continue] advances the index by the configured step;
//   - [Break] stops the loop at once;
//   - [JumpTo] rewrites the index.
//
// The two driving modes treat a jump differently. In count-driven mode the
// jump target is the next index as is. In predicate-driven mode the step is
// still added after the jump, so the next index is target+step:
//
//	repeat.Run(fn, repeat.Count(10))                 // jump to 5 -> next index 5
//	repeat.Run(fn, repeat.While(pred))               // jump to 5 -> next index 6
//
// The loop is synchronous: Run returns once the last callback has returned.
package repeat
