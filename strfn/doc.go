// Package strfn is a factory of ready-made function objects for common
// string transforms: case folding, trimming, length, first-character
// extraction, substring, append/prepend, and parse-to-primitive for each of
// the eight primitive kinds.
//
// # Singletons and parameterized instances
//
// Stateless transforms (ToUpperCase, Trim, Length, the ToPrimitive* parsers,
// ...) are built once; the factory returns the same shared instance on every
// call. Parameterized transforms (SubString, Append, Prepend) build a new
// immutable instance per call, capturing their operands by value:
//
//	he := strfn.SubString(0, 2).ValueOf("hello") // "he"
//
// Returned instances must not be assumed to differ between calls, and none
// expose mutable state.
//
// # Failure policy
//
// The ToPrimitive* parsers panic wrapping [ErrParse] (and the underlying
// strconv error) when the input is not valid text for the target kind.
// ToFirstChar panics with [ErrEmptyString] on empty input, while FirstLetter
// returns nil instead; they are the strict and forgiving forms of the same
// question.
//
// # Diagnostics
//
// Every function object implements fmt.Stringer with a description of the
// computation, e.g. "string.subString(0,2)". Descriptions of parameterized
// instances encode their captured operands. The text is for logging and
// debugging only.
package strfn
