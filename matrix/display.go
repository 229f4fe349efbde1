package matrix

import (
	"fmt"
	"strings"
)

// Display formats d as name followed by its rows, one per line, each
// element rounded to decimals places.
func (d Dense) Display(name string, decimals int) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s =\n", name)
	}
	format := fmt.Sprintf("%%.%df\t", decimals)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			fmt.Fprintf(&b, format, d.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer with a default 4-decimal display, so a
// Dense can be dropped directly into a %v/%s format verb or a logger field.
func (d Dense) String() string {
	return d.Display("", 4)
}
