package strfn

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-sequences/fn"
)

// Shared stateless singletons. Each factory below returns the same instance
// on every call; none expose mutable state, so callers may hold and reuse
// them freely across goroutines.
var (
	toUpperCase = toUpperCaseFunction{}
	toLowerCase = toLowerCaseFunction{}
	trim        = trimFunction{}
	length      = lengthFunction{}
	firstLetter = firstLetterFunction{}
	toFirstChar = toFirstCharFunction{}
)

// ToUpperCase returns the shared function object mapping a string to its
// upper-case form.
func ToUpperCase() fn.Function[string, string] { return toUpperCase }

// ToLowerCase returns the shared function object mapping a string to its
// lower-case form.
func ToLowerCase() fn.Function[string, string] { return toLowerCase }

// Trim returns the shared function object mapping a string to a copy with
// leading and trailing whitespace removed.
func Trim() fn.Function[string, string] { return trim }

// Length returns the shared primitive-returning function object mapping a
// string to its length in bytes.
func Length() fn.IntFunction[string] { return length }

// FirstLetter returns the shared function object mapping a string to its
// first rune, or nil for the empty string. Contrast with [ToFirstChar],
// which treats an empty input as a range error instead of an absent value.
func FirstLetter() fn.Function[string, *rune] { return firstLetter }

// ToFirstChar returns the shared primitive-returning function object mapping
// a string to its first rune. It panics with [ErrEmptyString] on empty input;
// use [FirstLetter] when absence should be a value rather than a failure.
func ToFirstChar() fn.RuneFunction[string] { return toFirstChar }

// SubString returns a new function object extracting the substring
// [beginIndex, endIndex) from its input. Indexes are byte offsets, end
// exclusive. The bounds are captured immutably at construction; applying the
// function to a string they do not fit panics with the runtime's slice
// bounds error.
func SubString(beginIndex, endIndex int) fn.Function[string, string] {
	return subStringFunction{beginIndex: beginIndex, endIndex: endIndex}
}

// Append returns a new function object appending suffix to its input.
func Append(suffix string) fn.Function[string, string] {
	return appendFunction{suffix: suffix}
}

// Prepend returns a new function object prepending prefix to its input.
func Prepend(prefix string) fn.Function[string, string] {
	return prependFunction{prefix: prefix}
}

type toUpperCaseFunction struct{}

func (toUpperCaseFunction) ValueOf(s string) string { return strings.ToUpper(s) }
func (toUpperCaseFunction) String() string          { return "string.toUpperCase()" }

type toLowerCaseFunction struct{}

func (toLowerCaseFunction) ValueOf(s string) string { return strings.ToLower(s) }
func (toLowerCaseFunction) String() string          { return "string.toLowerCase()" }

type trimFunction struct{}

func (trimFunction) ValueOf(s string) string { return strings.TrimSpace(s) }
func (trimFunction) String() string          { return "string.trim()" }

type lengthFunction struct{}

func (lengthFunction) IntValueOf(s string) int { return len(s) }
func (lengthFunction) String() string          { return "string.length()" }

type firstLetterFunction struct{}

func (firstLetterFunction) ValueOf(s string) *rune {
	if s == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return &r
}

func (firstLetterFunction) String() string { return "string.firstLetter()" }

type toFirstCharFunction struct{}

func (toFirstCharFunction) RuneValueOf(s string) rune {
	if s == "" {
		panic(fmt.Errorf("%w: no first char", ErrEmptyString))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func (toFirstCharFunction) String() string { return "string.toFirstChar()" }

type subStringFunction struct {
	beginIndex int
	endIndex   int
}

func (f subStringFunction) ValueOf(s string) string { return s[f.beginIndex:f.endIndex] }

func (f subStringFunction) String() string {
	return fmt.Sprintf("string.subString(%d,%d)", f.beginIndex, f.endIndex)
}

type appendFunction struct {
	suffix string
}

func (f appendFunction) ValueOf(s string) string { return s + f.suffix }
func (f appendFunction) String() string          { return fmt.Sprintf("string.append(%q)", f.suffix) }

type prependFunction struct {
	prefix string
}

func (f prependFunction) ValueOf(s string) string { return f.prefix + s }
func (f prependFunction) String() string          { return fmt.Sprintf("string.prepend(%q)", f.prefix) }
