package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a multi-component, totally ordered version identifier such as
// 1.2.3. Missing trailing components compare as zero.
type Version struct {
	parts []int
}

// ParseVersion parses a dotted numeric version. A leading "v" is accepted.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, fmt.Errorf("invalid version %q: empty", s)
	}

	fields := strings.Split(raw, ".")
	parts := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not a number", s, field)
		}

		parts = append(parts, n)
	}

	return Version{parts: parts}, nil
}

// MustParseVersion is ParseVersion that panics on error. Intended for tests
// and constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Major returns the first component.
func (v Version) Major() int {
	return v.component(0)
}

func (v Version) component(i int) int {
	if i < len(v.parts) {
		return v.parts[i]
	}

	return 0
}

// IsZero reports whether the version was never set.
func (v Version) IsZero() bool {
	return len(v.parts) == 0
}

// Compare returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	n := max(len(v.parts), len(other.parts))
	for i := range n {
		a, b := v.component(i), other.component(i)
		if a < b {
			return -1
		}

		if a > b {
			return 1
		}
	}

	return 0
}

// Equal reports whether both versions identify the same release.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) String() string {
	if len(v.parts) == 0 {
		return "0.0.0"
	}

	strs := make([]string, len(v.parts))
	for i, p := range v.parts {
		strs[i] = strconv.Itoa(p)
	}

	return strings.Join(strs, ".")
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
