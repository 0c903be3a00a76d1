// Package uuidlit validates and decodes UUID literals, reporting exactly where
// a malformed literal goes wrong.
//
// TryParse accepts every common textual form of a UUID and returns its
// 16 bytes:
//   - 67e5504410b1426f9247bb680e5fe0c8 (simple)
//   - 67e55044-10b1-426f-9247-bb680e5fe0c8 (hyphenated)
//   - {67e55044-10b1-426f-9247-bb680e5fe0c8} (braced)
//   - urn:uuid:67e55044-10b1-426f-9247-bb680e5fe0c8 (URN)
//
// Hex digits may be upper or lower case; the URN prefix is case-insensitive.
//
// Basic Usage:
//
//	id, err := uuidlit.TryParse("67e55044-10b1-426f-9247-bb680e5fe0c8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Package-level values, checked once at start-up
//	var tenantNS = uuidlit.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
//
// Errors:
//
// Every failure is a *ParseError. Its Kind says what is wrong and its fields
// say where, counted in characters of the input:
//
//	_, err := uuidlit.TryParse("67e5504X-10b1-426f-9247-bb680e5fe0c8")
//	var perr *uuidlit.ParseError
//	if errors.As(err, &perr) {
//	    start, n := perr.Span() // 7, 1
//	    fmt.Println(perr)       // invalid character: expected an ASCII hex digit, found X, at 7
//	}
//
// The overall shape of the input is always checked before its characters: a
// 33 digit simple literal is a length error and a hyphenated literal with six
// groups is a group count error, whatever characters they contain. Only the
// first problem is reported.
//
// Thread Safety:
//
// TryParse is a pure function and may be called concurrently.
//
// The uuidlit command (cmd/uuidlit) uses this package to check UUID literals
// in Go source files and print compiler-style diagnostics.
package uuidlit
