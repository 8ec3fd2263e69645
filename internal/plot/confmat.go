// internal/plot/confmat.go
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seqstat-core/alphabet"
)

const (
	confmatCell = 64
	confmatLeft = 20 // row label gutter
	confmatTop  = 20 // column label gutter
)

// ConfusionMatrix renders the averaged dinucleotide frequencies as an
// |A| x |A| grid: row base first, column base second, matching the
// alphabet's cross-product order. Cells are shaded on a viridis ramp
// normalized to the value range and annotated with the frequency. A
// frequency map missing any pair is an error.
func ConfusionMatrix(avg map[string]float64, a alphabet.Alphabet) (*image.RGBA, error) {
	n := a.Len()
	if n < 1 {
		return nil, fmt.Errorf("confusion matrix: empty alphabet")
	}
	pairs := a.Pairs()
	vals := make([]float64, len(pairs))
	for i, p := range pairs {
		v, ok := avg[p]
		if !ok {
			return nil, fmt.Errorf("confusion matrix: no frequency for pair %q", p)
		}
		vals[i] = v
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	norm := func(v float64) float64 {
		if hi == lo {
			return 0.5
		}
		return (v - lo) / (hi - lo)
	}

	img := image.NewRGBA(image.Rect(0, 0, confmatLeft+n*confmatCell, confmatTop+n*confmatCell))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	letters := a.Letters()
	for i := 0; i < n; i++ { // row
		for j := 0; j < n; j++ { // column
			v := vals[i*n+j]
			x := confmatLeft + j*confmatCell
			y := confmatTop + i*confmatCell
			r := image.Rect(x, y, x+confmatCell, y+confmatCell)
			draw.Draw(img, r, &image.Uniform{C: viridis(norm(v))}, image.Point{}, draw.Src)
			drawCentered(img, fmt.Sprintf("%.4f", v), x, y, confmatCell, confmatCell, color.White)
		}
	}
	for i, b := range letters {
		drawCentered(img, b, confmatLeft+i*confmatCell, 0, confmatCell, confmatTop, color.Black)
		drawCentered(img, b, 0, confmatTop+i*confmatCell, confmatLeft, confmatCell, color.Black)
	}
	return img, nil
}

// drawCentered draws s centered inside the box at (x, y) with the fixed
// 7x13 face.
func drawCentered(img draw.Image, s string, x, y, w, h int, c color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	tw := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(x+(w-tw)/2, y+(h+face.Ascent-face.Descent)/2)
	d.DrawString(s)
}
