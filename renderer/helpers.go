package renderer

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// bar renders a percentage as a row of block glyphs, one per 5%. It stands
// in for the pie chart of the web dashboard.
func bar(percent float64) string {
	if math.IsNaN(percent) || percent <= 0 {
		return ""
	}
	n := int(percent/5 + 0.5)
	if n > 20 {
		n = 20
	}
	return strings.Repeat("█", n)
}

// amount formats a float as a monetary cell with its currency symbol.
func amount(currency string, v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}
