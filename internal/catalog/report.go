package catalog

import (
	"fmt"
	"io"

	"github.com/storozhukBM/figures/lib/figure"
	"github.com/storozhukBM/figures/lib/seq"
)

// Report writes the count and total area of figures followed by every figure details.
func Report(w io.Writer, figures *seq.Seq[figure.Figure[float64]]) error {
	_, writeErr := fmt.Fprintf(
		w, "Total figures: %d\nTotal area: %s\n",
		figures.Len(), figure.FormatArea(figure.TotalArea(figures)),
	)
	if writeErr != nil {
		return writeErr
	}
	return figure.PrintAll[float64](w, figures)
}

// Demo returns the sample set of figures: the unit rhombus,
// and a pentagon and a hexagon inscribed in the unit circle.
func Demo() *seq.Seq[figure.Figure[float64]] {
	origin := figure.Pt(0.0, 0.0)
	return seq.Of[figure.Figure[float64]](
		figure.NewRhombus(figure.Pt(0.0, 1.0), figure.Pt(1.0, 0.0), figure.Pt(0.0, -1.0), figure.Pt(-1.0, 0.0)),
		figure.NewRegularPentagon(origin, 1.0),
		figure.NewRegularHexagon(origin, 1.0),
	)
}
