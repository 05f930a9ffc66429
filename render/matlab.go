package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/gokuldas/simulation-phased-array/field"
	"github.com/wiless/vlib"
)

// MatlabRenderer exports a field as a matlab/octave script: a filled
// contour of the field with the element positions plotted over it.
type MatlabRenderer struct {
	HoldOn bool // reuse the current figure instead of opening one
}

// WriteScript writes the script for one frame to w.
//
// The grid matrices are emitted as explicit matrix literals with
// ';'-separated rows; a bracketed row-of-rows would concatenate into
// a single row vector under matlab semantics and lose the grid shape.
func (m MatlabRenderer) WriteScript(w io.Writer, f field.Field, el array.Layout) error {
	var matlab vlib.Matlab
	matlab.SetDefaults()
	matlab.SetWriter(w)
	matlab.Silent = true

	matlab.Command(matrixLiteral("X", f.X))
	matlab.Command(matrixLiteral("Y", f.Y))
	matlab.Command(matrixLiteral("Z", f.Values))

	elx := vlib.NewVectorF(el.Size())
	ely := vlib.NewVectorF(el.Size())
	for i, p := range el.Positions {
		elx[i] = p.X
		ely[i] = p.Y
	}
	matlab.Export("ex", elx)
	matlab.Export("ey", ely)

	if !m.HoldOn {
		matlab.Command("figure;")
	}
	matlab.Command("contourf(X,Y,Z);")
	matlab.Command("hold on;")
	matlab.Command("plot(ex,ey,'o');")
	matlab.Close()
	return nil
}

// matrixLiteral renders name = [row1;row2;...]; with full-precision
// values, one ';'-separated row per matrix row.
func matrixLiteral(name string, m vlib.MatrixF) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" = [")
	for i, row := range m {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	b.WriteString("];")
	return b.String()
}
