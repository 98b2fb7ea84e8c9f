package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a value after JSON extraction.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of a model reply and decodes
// it into T. Markdown fences, chatter around the object, comments, and bare
// leading-decimal numbers such as .5 are tolerated. A non-nil validator runs
// on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(raw)
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(cleanJSON(block)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// stringTracker follows whether a byte-by-byte scan is inside a JSON string.
type stringTracker struct {
	in, escaped bool
}

// step consumes c and reports whether it belongs to a string literal,
// including the delimiting quotes.
func (s *stringTracker) step(c byte) bool {
	switch {
	case s.escaped:
		s.escaped = false
		return true
	case s.in && c == '\\':
		s.escaped = true
		return true
	case c == '"':
		s.in = !s.in
		return true
	}
	return s.in
}

// firstObject returns the first balanced {...} block in s. Fence lines
// contain no braces, so they never need separate handling.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	var st stringTracker
	depth := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// cleanJSON drops // and /* */ comments and rewrites .5 as 0.5, leaving
// string contents untouched.
func cleanJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var st stringTracker
	var prev byte // last significant byte written outside strings
	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.step(c) {
			b.WriteByte(c)
			prev = '"'
			continue
		}

		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				i += 2
				for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
					i++
				}
				i++
				continue
			}
		}

		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prev) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
		if !isSpace(c) {
			prev = c
		}
	}
	return b.String()
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\n' || c == '\r' || c == '\t' }
