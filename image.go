package fill

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 40
	cellBorder = 2
)

// WritePNG renders the grid as a PNG image: white cells on a black
// background, with each letter drawn centered in its cell.
func (g Grid) WritePNG(w io.Writer) error {
	if g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("cannot render an empty grid")
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := g.Get(x, y)
			if r == BlockedCell {
				continue
			}
			cell := image.Rect(
				x*cellSize+cellBorder,
				y*cellSize+cellBorder,
				(x+1)*cellSize-cellBorder,
				(y+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if r == EmptyCell {
				continue
			}
			letter := string(unicode.ToUpper(r))
			width := drawer.MeasureString(letter)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(x*cellSize+cellSize/2) - width/2,
				Y: fixed.I(y*cellSize + cellSize/2 + face.Height/2),
			}
			drawer.DrawString(letter)
		}
	}

	return png.Encode(w, img)
}
