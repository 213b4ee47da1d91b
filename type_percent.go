package fundpool

import "fmt"

// Percent is a display-only ratio expressed in percentage points.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString formats the percent with an explicit sign. Zero is "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// ratioOf returns part/base in percentage points, zero when the base is zero.
// Missing or empty bases never produce an infinity or a NaN.
func ratioOf(part, base Money) Percent {
	if base.IsZero() {
		return 0
	}
	return Percent(100 * part.value.Div(base.value).InexactFloat64())
}
