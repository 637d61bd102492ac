// File: lixenwraith/benchconf/type.go
package benchconf

import (
	"fmt"
	"reflect"
	"strconv"
)

// String retrieves a string value for key.
// Attempts conversion from common scalar types if the stored value isn't already a string.
func (v *Values) String(key string) (string, error) {
	val, found := v.Get(key)
	if !found {
		return "", fmt.Errorf("key not present: %s", key)
	}

	switch t := val.(type) {
	case string:
		return t, nil
	case UnsetValue:
		return "", nil // Unset reads as the empty string it came from
	case Bitmask:
		return strconv.Itoa(int(t)), nil
	case bool:
		return strconv.FormatBool(t), nil
	case fmt.Stringer:
		return t.String(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string for key %s", val, key)
}

// Int retrieves an integer value for key.
// Attempts conversion from other integer kinds and parsable strings.
func (v *Values) Int(key string) (int, error) {
	val, found := v.Get(key)
	if !found {
		return 0, fmt.Errorf("key not present: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to int", key)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(int(^uint(0)>>1)) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int for key %s: overflow", u, key)
		}
		return int(u), nil
	case reflect.String:
		i, err := strconv.Atoi(rv.String())
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int for key %s: %w", rv.String(), key, err)
		}
		return i, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int for key %s", val, key)
}

// Bool retrieves a boolean value for key.
// Numeric values convert as 0=false, non-zero=true.
func (v *Values) Bool(key string) (bool, error) {
	val, found := v.Get(key)
	if !found {
		return false, fmt.Errorf("key not present: %s", key)
	}
	if val == nil {
		return false, fmt.Errorf("value for key %s is nil, cannot convert to bool", key)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(rv.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for key %s: %w", rv.String(), key, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for key %s", val, key)
}

// Ints retrieves an integer list for key
func (v *Values) Ints(key string) ([]int, error) {
	val, found := v.Get(key)
	if !found {
		return nil, fmt.Errorf("key not present: %s", key)
	}
	list, ok := val.([]int)
	if !ok {
		return nil, fmt.Errorf("cannot convert type %T to []int for key %s", val, key)
	}
	return list, nil
}

// Sizes retrieves a byte size list for key
func (v *Values) Sizes(key string) ([]int64, error) {
	val, found := v.Get(key)
	if !found {
		return nil, fmt.Errorf("key not present: %s", key)
	}
	list, ok := val.([]int64)
	if !ok {
		return nil, fmt.Errorf("cannot convert type %T to []int64 for key %s", val, key)
	}
	return list, nil
}

// Ops retrieves an operation name list for key
func (v *Values) Ops(key string) ([]string, error) {
	val, found := v.Get(key)
	if !found {
		return nil, fmt.Errorf("key not present: %s", key)
	}
	list, ok := val.([]string)
	if !ok {
		return nil, fmt.Errorf("cannot convert type %T to []string for key %s", val, key)
	}
	return list, nil
}

// Bits retrieves an evaluated flag or mode expression for key.
// The second result is false when the key holds an opaque passthrough string instead.
func (v *Values) Bits(key string) (Bitmask, bool, error) {
	val, found := v.Get(key)
	if !found {
		return 0, false, fmt.Errorf("key not present: %s", key)
	}
	switch t := val.(type) {
	case Bitmask:
		return t, true, nil
	case string:
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("cannot convert type %T to Bitmask for key %s", val, key)
}
