package uuidlit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength indicates that a simple-form UUID does not have 32 characters
	ErrInvalidLength = errors.New("uuidlit: invalid UUID length")

	// ErrInvalidGroupCount indicates that a hyphenated UUID does not have 5 groups
	ErrInvalidGroupCount = errors.New("uuidlit: invalid UUID group count")

	// ErrInvalidGroupLength indicates that a hyphenated group has the wrong number of digits
	ErrInvalidGroupLength = errors.New("uuidlit: invalid UUID group length")

	// ErrInvalidCharacter indicates a character that is not an ASCII hex digit
	ErrInvalidCharacter = errors.New("uuidlit: invalid UUID character")

	// ErrInvalidFormat indicates a braced UUID with a missing opening or closing brace
	ErrInvalidFormat = errors.New("uuidlit: invalid UUID format")
)

// ErrorKind identifies why a UUID literal was rejected.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	KindLength
	KindGroupCount
	KindGroupLength
	KindChar
	KindFormat
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindGroupCount:
		return "group count"
	case KindGroupLength:
		return "group length"
	case KindChar:
		return "character"
	case KindFormat:
		return "format"
	default:
		return "unknown"
	}
}

// ParseError describes the first problem found in a UUID literal.
//
// All positions are character offsets into the text passed to TryParse,
// including any urn:uuid: prefix or opening brace. Which fields are set
// depends on Kind:
//   - KindLength, KindGroupCount: Found
//   - KindGroupLength: Group, Index, Len, Expected
//   - KindChar: Character, Index
//   - KindFormat: none
//
// InputLen is always set so the whole input can be highlighted.
type ParseError struct {
	Kind      ErrorKind
	Found     int
	Group     int
	Index     int
	Len       int
	Expected  int
	Character rune
	InputLen  int
}

// Error renders the problem as a single line
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindLength:
		return fmt.Sprintf("invalid length: expected length %d for simple format, found %d", simpleLen, e.Found)
	case KindGroupCount:
		return fmt.Sprintf("invalid group count: expected %d, found %d", len(groupLengths), e.Found)
	case KindGroupLength:
		return fmt.Sprintf("invalid length: expected length %d for group %d, found %d", e.Expected, e.Group, e.Len)
	case KindChar:
		return fmt.Sprintf("invalid character: expected an ASCII hex digit, found %c, at %d", e.Character, e.Index)
	case KindFormat:
		return "invalid format: unbalanced braces"
	default:
		return "failed to parse a UUID"
	}
}

// Unwrap returns the sentinel error matching the kind, so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindLength:
		return ErrInvalidLength
	case KindGroupCount:
		return ErrInvalidGroupCount
	case KindGroupLength:
		return ErrInvalidGroupLength
	case KindChar:
		return ErrInvalidCharacter
	case KindFormat:
		return ErrInvalidFormat
	default:
		return nil
	}
}

// Span returns the smallest run of characters responsible for the error as a
// start offset and a length, both counted in characters. Errors that are not
// tied to a character or a group cover the whole input.
func (e *ParseError) Span() (start, length int) {
	switch e.Kind {
	case KindChar:
		return e.Index, 1
	case KindGroupLength:
		return e.Index, e.Len
	default:
		return 0, e.InputLen
	}
}
