// File: lixenwraith/benchconf/sizes.go
package benchconf

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary size units accepted in size strings
const (
	KB int64 = 1 << 10
	MB int64 = 1 << 20
	GB int64 = 1 << 30
)

var sizeSuffixes = map[byte]int64{
	'K': KB,
	'M': MB,
	'G': GB,
}

// ParseSize converts a size string such as "4096", "1K", "2MB" or "3gb" into bytes.
// A trailing "B" is optional and the unit letter is case-insensitive.
func ParseSize(s string) (int64, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	if token == "" {
		return 0, fmt.Errorf("%w: empty size", ErrNotInteger)
	}
	if isDigits(token) {
		return parseCount(token)
	}

	token = strings.TrimSuffix(token, "B")
	if isDigits(token) {
		return parseCount(token)
	}
	if token == "" {
		return 0, fmt.Errorf("%w: %q has no magnitude", ErrNotInteger, s)
	}

	multiplier, ok := sizeSuffixes[token[len(token)-1]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSuffix, s)
	}
	magnitude := token[:len(token)-1]
	if !isDigits(magnitude) {
		return 0, fmt.Errorf("%w: %q has no integer magnitude", ErrNotInteger, s)
	}
	n, err := parseCount(magnitude)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("%w: %q exceeds %d bytes", ErrSizeOverflow, s, int64(math.MaxInt64))
	}
	return n * multiplier, nil
}

func parseCount(digits string) (int64, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q exceeds %d bytes", ErrSizeOverflow, digits, int64(math.MaxInt64))
		}
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, err)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
