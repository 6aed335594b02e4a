package figure

import (
	"bufio"
	"fmt"
	"io"

	"github.com/storozhukBM/figures/lib/seq"
)

// TotalArea sums numeric values of all figures in the sequence.
func TotalArea[F interface{ Float64() float64 }](figures *seq.Seq[F]) float64 {
	total := 0.0
	for _, f := range figures.All() {
		total += f.Float64()
	}
	return total
}

// PrintAll writes a report with every figure, its geometric center and area.
func PrintAll[T Scalar, F Figure[T]](w io.Writer, figures *seq.Seq[F]) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "=== All Figures ===")
	for i, f := range figures.All() {
		fmt.Fprintf(out, "Figure %d: %v\n", i, f)
		fmt.Fprintf(out, "Geometric center: %v\n", f.Center())
		fmt.Fprintf(out, "Area: %s\n", FormatArea(f.Area()))
		fmt.Fprintln(out, "---")
	}
	return out.Flush()
}

// FormatArea formats area with 6 significant digits.
func FormatArea(area float64) string {
	return fmt.Sprintf("%.6g", area)
}
