// internal/plot/dataset.go
package plot

import (
	"image"
	"image/color"
	"image/draw"

	"seqstat-core/alphabet"
)

const (
	maxImageWidth = 2048
	maxCellSize   = 16
)

// DatasetImage renders one row of colored cells per sequence, one cell per
// base. Valid bases take their palette color; anything off the alphabet
// takes the palette's reserved trailing color. Cells are upscaled by an
// integer factor chosen so the image stays within maxImageWidth.
func DatasetImage(seqs []string, a alphabet.Alphabet) *image.RGBA {
	width := 0
	for _, s := range seqs {
		if len(s) > width {
			width = len(s)
		}
	}

	pal := Palette(a.Len() + 1)
	invalid := pal[len(pal)-1]
	byBase := make(map[byte]color.RGBA, a.Len())
	for i, b := range a.Letters() {
		byBase[b[0]] = pal[i]
	}

	cell := cellSize(width)
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1)*cell, max(len(seqs), 1)*cell))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for row, seq := range seqs {
		for col := 0; col < len(seq); col++ {
			c, ok := byBase[seq[col]]
			if !ok {
				c = invalid
			}
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
	return img
}

func cellSize(width int) int {
	if width < 1 {
		return 1
	}
	cell := maxImageWidth / width
	if cell > maxCellSize {
		return maxCellSize
	}
	if cell < 1 {
		return 1
	}
	return cell
}
