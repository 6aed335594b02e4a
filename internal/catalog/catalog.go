package catalog

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/storozhukBM/figures/lib/figure"
	"github.com/storozhukBM/figures/lib/seq"
)

// Error type used by the package to declare error constants.
type Error string

func (e Error) Error() string {
	return string(e)
}

// InvalidEntryError is returned if a catalog entry can't be turned into a figure.
const InvalidEntryError = Error("invalid catalog entry")

// Catalog is a list of figure definitions, typically loaded from a yaml file.
type Catalog struct {
	Figures []Entry `yaml:"figures"`
}

// Entry defines a figure either by its exact vertices
// or as a regular figure by its center and circumradius.
type Entry struct {
	Kind     string       `yaml:"kind"`
	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	Center   *[2]float64  `yaml:"center,omitempty"`
	Radius   float64      `yaml:"radius,omitempty"`
}

func Load(r io.Reader) (Catalog, error) {
	var result Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if decodeErr := decoder.Decode(&result); decodeErr != nil && decodeErr != io.EOF {
		return Catalog{}, fmt.Errorf("can't decode catalog: %w", decodeErr)
	}
	return result, nil
}

func LoadFile(path string) (Catalog, error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return Catalog{}, fmt.Errorf("can't open catalog: %w", openErr)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Build constructs all figures of the catalog in order.
// log can be nil.
func (c Catalog) Build(log *zap.Logger) (*seq.Seq[figure.Figure[float64]], error) {
	if log == nil {
		log = zap.NewNop()
	}
	result := seq.New[figure.Figure[float64]]()
	for i, entry := range c.Figures {
		f, entryErr := entry.Figure()
		if entryErr != nil {
			return nil, fmt.Errorf("%w #%d: %w", InvalidEntryError, i, entryErr)
		}
		push(log, result, f)
	}
	log.Debug("catalog is built", zap.Stringer("figures", result.Stats()))
	return result, nil
}

// Figure constructs the figure defined by the entry.
func (e Entry) Figure() (figure.Figure[float64], error) {
	kind, kindErr := figure.ParseKind(e.Kind)
	if kindErr != nil {
		return nil, kindErr
	}
	switch {
	case len(e.Vertices) > 0 && e.Center != nil:
		return nil, fmt.Errorf("%v: vertices and center are mutually exclusive", kind)
	case len(e.Vertices) > 0:
		vertices := make([]figure.Point[float64], 0, len(e.Vertices))
		for _, v := range e.Vertices {
			vertices = append(vertices, figure.Pt(v[0], v[1]))
		}
		return figure.FromVertices(kind, vertices)
	case e.Center != nil:
		if e.Radius <= 0 {
			return nil, fmt.Errorf("%v: radius should be positive; actual: %v", kind, e.Radius)
		}
		return figure.NewRegular(kind, figure.Pt(e.Center[0], e.Center[1]), e.Radius)
	default:
		return nil, fmt.Errorf("%v: either vertices or center and radius are required", kind)
	}
}

func push[T any](log *zap.Logger, target *seq.Seq[T], v T) {
	capBefore := target.Cap()
	target.Push(v)
	if target.Cap() != capBefore {
		log.Debug(
			"figures storage has grown",
			zap.Int("from", capBefore), zap.Int("to", target.Cap()), zap.Int("len", target.Len()),
		)
	}
}
