// File: lixenwraith/benchconf/symbols.go
package benchconf

import (
	"fmt"
	"strconv"
	"strings"
)

// Bitmask is the evaluated bitwise OR of a symbolic flags or mode expression
type Bitmask int

// String renders the mask in octal, the conventional notation for open flags and modes
func (b Bitmask) String() string {
	return fmt.Sprintf("%#o", int(b))
}

// Has reports whether every bit of other is set in b
func (b Bitmask) Has(other Bitmask) bool {
	return b&other == other
}

// namespace is a lookup table of symbolic constant names for one key class
type namespace struct {
	name      string
	prefixes  []string
	constants map[string]int
}

// accessConstants are the access(2) mode checks, identical on every POSIX system
var accessConstants = map[string]int{
	"F_OK": 0,
	"X_OK": 1,
	"W_OK": 2,
	"R_OK": 4,
}

var (
	openFlagNamespace = namespace{
		name:      "open flags",
		prefixes:  []string{"O_"},
		constants: openFlagConstants,
	}
	modeNamespace = namespace{
		name:      "mode",
		prefixes:  []string{"S_", "F_", "R_", "W_", "X_"},
		constants: mergeConstants(permissionConstants, accessConstants),
	}
)

func mergeConstants(tables ...map[string]int) map[string]int {
	out := make(map[string]int)
	for _, table := range tables {
		for name, value := range table {
			out[name] = value
		}
	}
	// Legacy aliases from <sys/stat.h>
	if _, ok := out["S_IRUSR"]; ok {
		out["S_IREAD"] = out["S_IRUSR"]
		out["S_IWRITE"] = out["S_IWUSR"]
		out["S_IEXEC"] = out["S_IXUSR"]
		out["S_ENFMT"] = out["S_ISGID"]
	}
	return out
}

// matches reports whether expr starts with one of the namespace's constant prefixes
func (ns namespace) matches(expr string) bool {
	for _, prefix := range ns.prefixes {
		if strings.HasPrefix(expr, prefix) {
			return true
		}
	}
	return false
}

// eval ORs every "|"-separated token of expr. On failure the offending token is returned.
func (ns namespace) eval(expr string) (Bitmask, string, error) {
	var mask Bitmask
	for _, token := range strings.Split(expr, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			return 0, token, fmt.Errorf("%w: empty operand in %s expression", ErrUnknownConstant, ns.name)
		}
		value, ok := ns.constants[token]
		if !ok {
			return 0, token, fmt.Errorf("%w: %s is not one of the %s constants", ErrUnknownConstant, token, ns.name)
		}
		mask |= Bitmask(value)
	}
	return mask, "", nil
}

// parseNumericMode accepts decimal, 0-prefixed octal, 0o and 0x mode literals.
// decimal reports a literal without a leading 0.
func parseNumericMode(s string) (mask Bitmask, decimal bool, ok bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false, false
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n < 0 {
		return 0, false, false
	}
	return Bitmask(n), s[0] != '0', true
}
