// Package records reads JSON sources into generic records and coerces record
// fields into the Go types the entity factories need.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidType  = errors.New("invalid type")
)

// Record is a single decoded JSON object. Numbers are kept as json.Number.
type Record map[string]any

// String renders the record as compact JSON with sorted keys, which is how
// records are quoted in error messages.
func (r Record) String() string {
	b, err := json.Marshal(map[string]any(r))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(r))
	}
	return string(b)
}

func (r Record) lookup(key string) (any, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingField, key)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: field %q is null", ErrInvalidType, key)
	}
	return v, nil
}

// Int coerces the field to an int. JSON numbers and numeric strings are
// accepted; fractional values are truncated toward zero.
func (r Record) Int(key string) (int, error) {
	v, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	var raw string
	switch x := v.(type) {
	case json.Number:
		raw = x.String()
	case string:
		raw = strings.TrimSpace(x)
	case float64:
		raw = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return x, nil
	default:
		return 0, fmt.Errorf("%w: field %q is %T, want number", ErrInvalidType, key, v)
	}

	n, err := parseInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: %q is not a number", ErrInvalidType, key, raw)
	}
	return n, nil
}

// parseInt falls back to float parsing for fractions and exponents. Floats
// at or beyond ±2^63 are rejected since int(f) would wrap.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f <= math.MinInt {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

// Bool coerces the field to a bool. JSON booleans and strings understood by
// strconv.ParseBool are accepted.
func (r Record) Bool(key string) (bool, error) {
	v, err := r.lookup(key)
	if err != nil {
		return false, err
	}

	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, fmt.Errorf("%w: field %q: %q is not a boolean", ErrInvalidType, key, x)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: field %q is %T, want boolean", ErrInvalidType, key, v)
	}
}

// Str returns the field as a string. JSON numbers are returned in their
// literal form.
func (r Record) Str(key string) (string, error) {
	v, err := r.lookup(key)
	if err != nil {
		return "", err
	}

	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: field %q is %T, want string", ErrInvalidType, key, v)
	}
}

// CheckKeys reports the record's keys that are not in allowed.
func (r Record) CheckKeys(allowed ...string) error {
	known := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		known[k] = struct{}{}
	}

	var unknown []string
	for k := range r {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
}
