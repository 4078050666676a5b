package intent

import "errors"

// ErrNoJSONObject is returned when model output holds no balanced {...} span.
var ErrNoJSONObject = errors.New("no JSON object in model output")

// ExtractJSONObject returns the first balanced top-level {...} span in s.
// Braces inside string literals are ignored, so commentary and code fences
// around the object do not matter.
func ExtractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if start < 0 {
			if ch == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONObject
}
