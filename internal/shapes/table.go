package shapes

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"shape-viewer/internal/geometry"
)

// WriteTable prints one line per shape: id, geometry kind, parameters and
// the size of the built mesh.
func WriteTable(w io.Writer, c *Curves) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tPARAMS\tVERTICES\tTRIANGLES")
	for _, id := range All {
		p := Select(id, c)
		m, err := geometry.Build(p.Geometry)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		params := make([]string, len(p.Geometry.Params))
		for i, v := range p.Geometry.Params {
			params[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", id, p.Geometry.Kind, strings.Join(params, ","), m.VertexCount(), m.TriangleCount())
	}
	return tw.Flush()
}
