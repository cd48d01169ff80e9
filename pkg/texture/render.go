package texture

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// activeDot marks powered machine variants.
var activeDot = color.RGBA{255, 150, 0, 255}

// Render draws the placeholder texture for name: a size x size square filled
// with the keyword color, a one pixel border darkened by 40 per channel, and
// the uppercased first letter of name centered in a contrasting color.
//
// The glyph comes from basicfont.Face7x13, so the output is fully
// deterministic across platforms.
func Render(name string, size int) *image.RGBA {
	fill := ColorFor(name)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)

	border := color.RGBA{darken(fill.R), darken(fill.G), darken(fill.B), 255}
	for i := 0; i < size; i++ {
		img.SetRGBA(i, 0, border)
		img.SetRGBA(i, size-1, border)
		img.SetRGBA(0, i, border)
		img.SetRGBA(size-1, i, border)
	}

	if name != "" {
		r, _ := utf8.DecodeRuneInString(name)
		drawGlyph(img, strings.ToUpper(string(r)), fill, size)
	}
	return img
}

// RenderActive is Render plus a small orange disk at the center, the marker
// for an active or powered state.
func RenderActive(name string, size int) *image.RGBA {
	img := Render(name, size)
	cx, cy := size/2, size/2
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx*dx+dy*dy <= 5 {
				img.SetRGBA(cx+dx, cy+dy, activeDot)
			}
		}
	}
	return img
}

// IsActive reports whether name denotes an active machine variant.
func IsActive(name string) bool {
	return strings.Contains(name, "active")
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func drawGlyph(img *image.RGBA, letter string, fill color.RGBA, size int) {
	face := basicfont.Face7x13
	glyph := image.NewUniform(contrast(fill))

	d := font.Drawer{
		Dst:  img,
		Src:  glyph,
		Face: face,
	}
	width := d.MeasureString(letter)
	top := (size - face.Height) / 2
	d.Dot = fixed.Point26_6{
		X: fixed.I(size)/2 - width/2,
		Y: fixed.I(top + face.Ascent),
	}
	d.DrawString(letter)
}

// contrast picks white on dark fills and black on light ones, thresholded at
// the midpoint of the channel range.
func contrast(c color.RGBA) color.RGBA {
	brightness := (int(c.R) + int(c.G) + int(c.B)) / 3
	if brightness < 128 {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{0, 0, 0, 255}
}

func darken(c uint8) uint8 {
	if c < 40 {
		return 0
	}
	return c - 40
}
