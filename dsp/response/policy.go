package response

import "fmt"

// Policy selects how a response curve behaves between its outermost control
// point and the range boundary (0 Hz on the low end, Nyquist on the high end).
type Policy int

const (
	// PolicyLinear ramps the response linearly down to zero at the boundary.
	PolicyLinear Policy = iota
	// PolicyFlat holds the outermost response value constant to the boundary.
	PolicyFlat
	// PolicyZero drops the response to zero an eps away from the outermost
	// control point and keeps it zero to the boundary.
	PolicyZero
)

// String returns the canonical lowercase policy name.
func (p Policy) String() string {
	switch p {
	case PolicyLinear:
		return "linear"
	case PolicyFlat:
		return "flat"
	case PolicyZero:
		return "zero"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyLinear, PolicyFlat, PolicyZero:
		return true
	}
	return false
}

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "linear":
		return PolicyLinear, nil
	case "flat":
		return PolicyFlat, nil
	case "zero":
		return PolicyZero, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
}
