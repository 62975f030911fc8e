package dividash

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent (5 means 5%).
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

// Factor returns the multiplicative growth factor for one period (5% -> 1.05).
func (p Percent) Factor() float64 { return 1 + float64(p)/100 }

// IsDefined reports whether the percentage holds an actual value. Metrics
// computed against a zero baseline are NaN, and displayed as undefined.
func (p Percent) IsDefined() bool { return !math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if !p.IsDefined() {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if !p.IsDefined() {
		return "-"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
