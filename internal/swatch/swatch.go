// Package swatch draws a palette as a strip of labelled color cells.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seedscape/internal/palette"
)

// Options controls cell geometry and labelling. Zero values pick defaults.
type Options struct {
	CellWidth  int
	CellHeight int
	Labels     bool
}

const (
	defaultCell  = 96
	labelPadding = 4
)

// Render draws base followed by colors, one cell each, left to right.
func Render(base palette.RGB, colors []palette.RGB, opts Options) *image.RGBA {
	w, h := opts.CellWidth, opts.CellHeight
	if w <= 0 {
		w = defaultCell
	}
	if h <= 0 {
		h = defaultCell
	}

	cells := append([]palette.RGB{base}, colors...)
	img := image.NewRGBA(image.Rect(0, 0, w*len(cells), h))
	face := basicfont.Face7x13

	for i, c := range cells {
		rect := image.Rect(i*w, 0, (i+1)*w, h)
		fill := c.RGBA()
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)

		if !opts.Labels {
			continue
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColor(fill)),
			Face: face,
			Dot:  fixed.P(rect.Min.X+labelPadding, h-labelPadding-face.Descent),
		}
		d.DrawString(c.Hex())
	}
	return img
}

// labelColor picks black or white text for legibility on bg.
func labelColor(bg color.RGBA) color.Color {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return color.Black
	}
	return color.White
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode swatch: %w", err)
	}
	return nil
}
