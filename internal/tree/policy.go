package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy is returned when an empty-value policy name is not recognized.
var ErrInvalidPolicy = errors.New("invalid empty-value policy")

// EmptyPolicy decides how a blank cell is written.
type EmptyPolicy string

const (
	// PolicyNull writes the key with a null value.
	PolicyNull EmptyPolicy = "null"
	// PolicyEmpty writes the key with an empty string.
	PolicyEmpty EmptyPolicy = "empty"
	// PolicyOmit leaves the key out.
	PolicyOmit EmptyPolicy = "omit"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyNull

// Policies lists the recognized policies in display order.
func Policies() []EmptyPolicy {
	return []EmptyPolicy{PolicyNull, PolicyEmpty, PolicyOmit}
}

// ParseEmptyPolicy converts a policy name. An empty name yields DefaultPolicy.
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	if s == "" {
		return DefaultPolicy, nil
	}

	p := EmptyPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w %q (expected null, empty or omit)", ErrInvalidPolicy, s)
	}

	return p, nil
}

// IsValid returns true if the policy is recognized.
func (p EmptyPolicy) IsValid() bool {
	return p == PolicyNull || p == PolicyEmpty || p == PolicyOmit
}

// String implements fmt.Stringer and pflag.Value.
func (p EmptyPolicy) String() string {
	return string(p)
}

// Set implements pflag.Value.
func (p *EmptyPolicy) Set(s string) error {
	parsed, err := ParseEmptyPolicy(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// Type implements pflag.Value.
func (p *EmptyPolicy) Type() string {
	return "policy"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *EmptyPolicy) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (p EmptyPolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// blank returns the value written for an empty cell and whether to write at all.
func (p EmptyPolicy) blank() (Value, bool) {
	switch p {
	case PolicyEmpty:
		return String(""), true
	case PolicyOmit:
		return Value{}, false
	default:
		return Null(), true
	}
}
