// Package common holds checks that apply to values of any type: presence
// (null, undefined, nullish, defined), membership in a fixed set, and the
// N-ary boolean combinators used to fold several conditions into one.
//
// Go has a single nil, so the two absence markers are told apart by type:
//
//   - undefined is the untyped nil: an any holding nothing at all, the way a
//     missing map entry or an unset interface field looks;
//   - null is a typed nil: an any holding a nil pointer, map, slice, channel
//     or func. [Null] is the canonical one.
//
// Nullish covers both.
package common
