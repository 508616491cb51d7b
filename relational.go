package fixed

// Cmp returns -1, 0 or +1 as n is less than, equal to, or greater than
// other, aligning decimal places first so the comparison is exact
// regardless of either operand's current scale.
func (n Number) Cmp(other Number) int {
	a, b, err := alignDecimalPlaces(n, other)
	if err != nil {
		// alignDecimalPlaces only fails on an out-of-range power-of-ten
		// lookup, which cannot happen for two already-valid Numbers;
		// fall back to comparing the unaligned raw values rather than
		// panicking on a comparison.
		return n.raw().Cmp(other.raw())
	}
	return a.raw().Cmp(b.raw())
}

// Equal reports whether n and other represent the same value.
func (n Number) Equal(other Number) bool { return n.Cmp(other) == 0 }

// LessThan reports whether n < other.
func (n Number) LessThan(other Number) bool { return n.Cmp(other) < 0 }

// LessThanOrEqual reports whether n <= other.
func (n Number) LessThanOrEqual(other Number) bool { return n.Cmp(other) <= 0 }

// GreaterThan reports whether n > other.
func (n Number) GreaterThan(other Number) bool { return n.Cmp(other) > 0 }

// GreaterThanOrEqual reports whether n >= other.
func (n Number) GreaterThanOrEqual(other Number) bool { return n.Cmp(other) >= 0 }
