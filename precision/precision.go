// Package precision implements the thirteen policies that decide how
// many decimal places the result of a multiplication or division
// carries, given the two operands' decimal-place counts. Like package
// rounding, this is a closed set dispatched by a fixed table rather
// than an open interface -- callers pick one of the named Policy
// constants.
package precision

import "fmt"

// Policy names one of the thirteen precision rules.
type Policy int

const (
	MinOperandPlus0 Policy = iota
	MinOperandPlus1
	MinOperandPlus2
	MinOperandPlus3
	MinOperandPlus4
	MinOperandPlus5
	MaxOperandPlus0
	MaxOperandPlus1
	MaxOperandPlus2
	MaxOperandPlus3
	MaxOperandPlus4
	MaxOperandPlus5
	MaxPrecision

	policyMaxVal
)

var policyStrings = [...]string{
	"MIN_OPERAND_PLUS_0",
	"MIN_OPERAND_PLUS_1",
	"MIN_OPERAND_PLUS_2",
	"MIN_OPERAND_PLUS_3",
	"MIN_OPERAND_PLUS_4",
	"MIN_OPERAND_PLUS_5",
	"MAX_OPERAND_PLUS_0",
	"MAX_OPERAND_PLUS_1",
	"MAX_OPERAND_PLUS_2",
	"MAX_OPERAND_PLUS_3",
	"MAX_OPERAND_PLUS_4",
	"MAX_OPERAND_PLUS_5",
	"MAX_PRECISION",
}

func init() {
	if len(policyStrings) != int(policyMaxVal) {
		panic("precision: policyStrings size does not match the number of defined policies")
	}
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyStrings) {
		return "UNKNOWN_PRECISION_POLICY"
	}
	return policyStrings[p]
}

// Valid reports whether p is one of the thirteen defined policies.
func (p Policy) Valid() bool {
	return p >= 0 && p < policyMaxVal
}

func minOperandK(p Policy) (k int, ok bool) {
	if p >= MinOperandPlus0 && p <= MinOperandPlus5 {
		return int(p - MinOperandPlus0), true
	}
	return 0, false
}

func maxOperandK(p Policy) (k int, ok bool) {
	if p >= MaxOperandPlus0 && p <= MaxOperandPlus5 {
		return int(p - MaxOperandPlus0), true
	}
	return 0, false
}

// ProductDecimalPlaces computes the result decimal places of a
// multiplication with operand decimal places da, db, under policy,
// capped at maxDecimalPlaces and at da+db (multiplication never
// synthesizes precision the operands didn't have).
//
// When the two operands of an operation carry different policies, the
// caller is responsible for evaluating both policies against the same
// da, db and keeping the larger result -- which policy "yields more"
// decimal places depends on da and db, not on the policies alone, so
// there is no policy-to-policy ordering this package can precompute.
func ProductDecimalPlaces(da, db, maxDecimalPlaces int, policy Policy) (int, error) {
	ceiling := min(da+db, maxDecimalPlaces)

	if k, ok := minOperandK(policy); ok {
		return min(min(da, db)+k, ceiling), nil
	}
	if k, ok := maxOperandK(policy); ok {
		return min(max(da, db)+k, ceiling), nil
	}
	if policy == MaxPrecision {
		return ceiling, nil
	}
	return 0, fmt.Errorf("precision: unknown policy %v", policy)
}

// QuotientDecimalPlaces computes the result decimal places of a
// division with operand decimal places da, db, under policy, capped
// only at maxDecimalPlaces (division has no da+db ceiling).
func QuotientDecimalPlaces(da, db, maxDecimalPlaces int, policy Policy) (int, error) {
	if k, ok := minOperandK(policy); ok {
		return min(min(da, db)+k, maxDecimalPlaces), nil
	}
	if k, ok := maxOperandK(policy); ok {
		return min(max(da, db)+k, maxDecimalPlaces), nil
	}
	if policy == MaxPrecision {
		return maxDecimalPlaces, nil
	}
	return 0, fmt.Errorf("precision: unknown policy %v", policy)
}
