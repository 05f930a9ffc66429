// Package render holds the visual collaborators of the simulator:
// renderers that turn a field plus its element layout into a frame
// artifact, and the frame writer that stores frames on disk.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/gokuldas/simulation-phased-array/field"
)

// Renderer draws one frame. No return value beyond the image is
// consumed by the sweep itself.
type Renderer interface {
	Render(f field.Field, el array.Layout) (image.Image, error)
}

// ImageRenderer rasterizes the field as a diverging heatmap, blue for
// troughs and red for crests, with the elements overlaid as white
// markers. Values are normalized per frame against the peak
// magnitude, so a frame of any element count fills the full range.
type ImageRenderer struct {
	Width, Height int // zero means 800x600
}

func (ir ImageRenderer) Render(f field.Field, el array.Layout) (image.Image, error) {
	res := len(f.Values)
	if res < 2 || len(f.Values[0]) != res {
		return nil, fmt.Errorf("%w: field is not a square grid of at least 2 samples per axis", parray.ErrInvalidArgument)
	}
	w, h := ir.Width, ir.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}

	peak := 0.0
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			if v := f.Values[i][j]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
	}
	if peak == 0 {
		peak = 1 // all-zero field renders mid-gray
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for py := 0; py < h; py++ {
		i := res - 1 - py*res/h // flip so +y is up
		for px := 0; px < w; px++ {
			j := px * res / w
			v := f.Values[i][j] / peak // in [-1, 1]
			img.SetNRGBA(px, py, color.NRGBA{
				R: uint8(127.5 * (1 + v)),
				G: uint8(32 * (1 - v*v)),
				B: uint8(127.5 * (1 - v)),
				A: 0xFF,
			})
		}
	}

	lo := f.X[0][0]
	hi := f.X[0][res-1]
	span := hi - lo
	for e := 0; e < el.Size(); e++ {
		px := int(float64(w) * (el.Positions[e].X - lo) / span)
		py := h - 1 - int(float64(h)*(el.Positions[e].Y-lo)/span)
		drawMarker(img, px, py)
	}
	return img, nil
}

// drawMarker stamps a small white square, clipped to the image.
func drawMarker(img *image.NRGBA, cx, cy int) {
	b := img.Bounds()
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			x, y := cx+dx, cy+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.SetNRGBA(x, y, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
			}
		}
	}
}

// FrameWriter stores rendered frames in Dir under the deterministic
// name Prefix + zero-padded 3-digit frame index + ".png".
type FrameWriter struct {
	Dir    string
	Prefix string
}

// Name returns the file name used for the given frame index.
func (fw FrameWriter) Name(frame int) string {
	return fmt.Sprintf("%s%03d.png", fw.Prefix, frame)
}

// Write encodes img losslessly and returns the full path of the
// written file. Filesystem failures surface as external-tool errors.
func (fw FrameWriter) Write(frame int, img image.Image) (string, error) {
	full := filepath.Join(fw.Dir, fw.Name(frame))
	fd, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("%w: %v", parray.ErrExternalTool, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(fd, img); err != nil {
		fd.Close()
		return "", fmt.Errorf("%w: %v", parray.ErrExternalTool, err)
	}
	if err := fd.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", parray.ErrExternalTool, err)
	}
	return full, nil
}
