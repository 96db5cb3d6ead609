package core

import (
	"errors"
	"fmt"
	"math"
)

// Policy selects what an addition conformer does when the sum leaves the int range.
type Policy int

// Policy values.
const (
	// PolicyFail panics with an *OverflowError. Checked invokers turn that into an ErrOverflow error.
	PolicyFail Policy = iota
	// PolicyWrap uses Go's two's-complement wraparound.
	PolicyWrap
	// PolicySaturate clamps to math.MaxInt or math.MinInt.
	PolicySaturate
)

// Add is the concrete conformer of the contract: a + b under PolicyFail.
func Add(a, b int) int {
	sum, overflowed := addWithOverflow(a, b)
	if overflowed {
		panic(&OverflowError{A: a, B: b})
	}

	return sum
}

// Addition returns the addition conformer for the given policy. An unknown policy behaves like PolicyFail.
func Addition(policy Policy) Func {
	switch policy {
	case PolicyWrap:
		return addWrapping
	case PolicySaturate:
		return addSaturating
	case PolicyFail:
		return Add
	default:
		return Add
	}
}

// ParsePolicy maps "fail", "wrap" or "saturate" to its Policy.
func ParsePolicy(name string) (Policy, error) {
	for policy, policyName := range policyNames {
		if policyName == name {
			return Policy(policy), nil
		}
	}

	return PolicyFail, fmt.Errorf("%w: %q (want one of %v)", errUnknownPolicy, name, policyNames)
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// unexported variables.
var (
	errUnknownPolicy = errors.New("unknown overflow policy")
	//nolint:gochecknoglobals // indexed by Policy
	policyNames = []string{"fail", "wrap", "saturate"}
)

// addWithOverflow returns the wrapped sum and whether it overflowed.
// Overflow happened iff both operands share a sign that the sum does not.
func addWithOverflow(a, b int) (int, bool) {
	sum := a + b

	return sum, (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0)
}

func addSaturating(a, b int) int {
	sum, overflowed := addWithOverflow(a, b)
	if !overflowed {
		return sum
	}

	if a > 0 {
		return math.MaxInt
	}

	return math.MinInt
}

func addWrapping(a, b int) int {
	return a + b
}
