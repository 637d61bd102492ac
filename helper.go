// File: lixenwraith/benchconf/helper.go
package benchconf

import "strings"

// isValidKeySegment checks that a section or key name is a bare identifier.
// Letters, digits, underscores and dashes are accepted; dots and whitespace are not.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.ContainsRune(s, '.') {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// exportValue converts a coerced value into a form every encoder understands.
// The second result is false for values that should be omitted.
func exportValue(val any) (any, bool) {
	switch t := val.(type) {
	case UnsetValue:
		return nil, false
	case Bitmask:
		return int(t), true
	default:
		return cloneValue(val), true
	}
}

// exportMap applies exportValue to every entry of m
func exportMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, val := range m {
		if exported, ok := exportValue(val); ok {
			out[key] = exported
		}
	}
	return out
}
