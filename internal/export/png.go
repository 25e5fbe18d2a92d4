// Package export turns a rendered canvas into image files. Glyphs are
// not rasterized; each cell contributes its background color, which is
// enough to share the shape and palette of a landscape.
package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"landscape/internal/config"
	"landscape/internal/render"
)

// Image converts the canvas to an RGBA image, one pixel per cell,
// upscaled by the integer factor scale with hard pixel edges.
func Image(c *render.Canvas, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, config.Errorf("scale", "must be at least 1, got %d", scale)
	}

	base := image.NewRGBA(image.Rect(0, 0, c.Cols(), c.Rows()))
	for row := 0; row < c.Rows(); row++ {
		for col, cell := range c.Row(row) {
			base.SetRGBA(col, row, color.RGBA{R: cell.Bg.R, G: cell.Bg.G, B: cell.Bg.B, A: 0xff})
		}
	}
	if scale == 1 {
		return base, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, c.Cols()*scale, c.Rows()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	return dst, nil
}

// WritePNG encodes the canvas as PNG to w.
func WritePNG(w io.Writer, c *render.Canvas, scale int) error {
	img, err := Image(c, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the canvas as a PNG file at path.
func SavePNG(path string, c *render.Canvas, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, c, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
