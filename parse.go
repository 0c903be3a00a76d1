package uuidlit

import (
	"fmt"
	"strings"
)

// UUID is the 16 byte value of a UUID literal, big-endian within each
// of the 4-2-2-2-6 byte groups of the textual form.
type UUID [16]byte

// Nil is the nil UUID (all zeros)
var Nil UUID

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

const (
	urnPrefix = "urn:uuid:"
	simpleLen = 32
)

// groupLengths holds the number of hex digits in each hyphenated group.
var groupLengths = [5]int{8, 4, 4, 4, 12}

// TryParse decodes a UUID literal into its 16 bytes.
// It accepts the following formats, with hex digits in any case:
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (simple)
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (hyphenated)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx} (braced)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (URN, prefix in any case)
//
// On failure the returned error is always a *ParseError describing the first
// problem found. The shape of the input (wrapper, length, groups) is checked
// before any individual character.
func TryParse(s string) (UUID, error) {
	text := []rune(s)
	if len(text) == 0 {
		return Nil, &ParseError{Kind: KindLength}
	}

	body, offset, wrapped, err := unwrap(text)
	if err != nil {
		return Nil, err
	}

	var uuid UUID
	if !wrapped && !hasHyphen(body) {
		if len(body) != simpleLen {
			return Nil, &ParseError{Kind: KindLength, Found: len(body), InputLen: len(text)}
		}
		if err := decodeHex(uuid[:], body, offset, len(text)); err != nil {
			return Nil, err
		}
		return uuid, nil
	}

	if err := parseHyphenated(&uuid, body, offset, len(text)); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// MustParse is like TryParse but panics if the literal cannot be parsed.
// It simplifies safe initialization of global variables from literals.
func MustParse(s string) UUID {
	uuid, err := TryParse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidlit: TryParse(%q): %v", s, err))
	}
	return uuid
}

// unwrap strips a urn:uuid: prefix or a pair of braces. It returns the
// remaining body and the number of characters removed before it.
func unwrap(text []rune) (body []rune, offset int, wrapped bool, err error) {
	n := len(text)
	if n >= len(urnPrefix) && strings.EqualFold(string(text[:len(urnPrefix)]), urnPrefix) {
		return text[len(urnPrefix):], len(urnPrefix), true, nil
	}

	open := text[0] == '{'
	closed := text[n-1] == '}'
	switch {
	case open && closed && n >= 2:
		return text[1 : n-1], 1, true, nil
	case open || closed:
		return nil, 0, false, &ParseError{Kind: KindFormat, InputLen: n}
	}
	return text, 0, false, nil
}

func hasHyphen(body []rune) bool {
	for _, r := range body {
		if r == '-' {
			return true
		}
	}
	return false
}

// parseHyphenated decodes an 8-4-4-4-12 body. Group count and group lengths
// are validated before any digit is decoded.
func parseHyphenated(uuid *UUID, body []rune, offset, inputLen int) error {
	var starts [len(groupLengths)]int
	var ends [len(groupLengths)]int

	count := 0
	start := 0
	for i, r := range body {
		if r != '-' {
			continue
		}
		if count < len(groupLengths) {
			starts[count], ends[count] = start, i
		}
		count++
		start = i + 1
	}
	if count < len(groupLengths) {
		starts[count], ends[count] = start, len(body)
	}
	count++

	if count != len(groupLengths) {
		return &ParseError{Kind: KindGroupCount, Found: count, InputLen: inputLen}
	}

	for g, want := range groupLengths {
		if got := ends[g] - starts[g]; got != want {
			return &ParseError{
				Kind:     KindGroupLength,
				Group:    g,
				Index:    offset + starts[g],
				Len:      got,
				Expected: want,
				InputLen: inputLen,
			}
		}
	}

	pos := 0
	for g, n := range groupLengths {
		if err := decodeHex(uuid[pos:pos+n/2], body[starts[g]:ends[g]], offset+starts[g], inputLen); err != nil {
			return err
		}
		pos += n / 2
	}
	return nil
}

// decodeHex decodes pairs of hex digits from src into dst. offset is the
// position of src[0] in the full input.
func decodeHex(dst []byte, src []rune, offset, inputLen int) error {
	for i := 0; i < len(src); i += 2 {
		hi, ok := fromHexChar(src[i])
		if !ok {
			return &ParseError{Kind: KindChar, Character: src[i], Index: offset + i, InputLen: inputLen}
		}
		lo, ok := fromHexChar(src[i+1])
		if !ok {
			return &ParseError{Kind: KindChar, Character: src[i+1], Index: offset + i + 1, InputLen: inputLen}
		}
		dst[i/2] = hi<<4 | lo
	}
	return nil
}

// fromHexChar converts an ASCII hex digit to its value
func fromHexChar(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r - 'a' + 10), true
	case 'A' <= r && r <= 'F':
		return byte(r - 'A' + 10), true
	}
	return 0, false
}
