// internal/plot/colors.go
package plot

import (
	"image/color"
	"math"
)

// Palette returns n colors evenly spaced around the hue wheel at full
// saturation and 0.4 lightness, dark enough to tell apart on a white
// canvas. Index order is stable, so a base keeps its color across runs.
func Palette(n int) []color.RGBA {
	out := make([]color.RGBA, 0, n)
	if n < 1 {
		return out
	}
	step := 360.0 / float64(n)
	for i := 0; i < n; i++ {
		r, g, b := hlsToRGB(float64(i)*step/360.0, 0.4, 1)
		out = append(out, color.RGBA{
			R: uint8(math.Round(r * 255)),
			G: uint8(math.Round(g * 255)),
			B: uint8(math.Round(b * 255)),
			A: 255,
		})
	}
	return out
}

// hlsToRGB converts hue/lightness/saturation (all in [0,1]) to RGB.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueRamp(m1, m2, h+1.0/3.0), hueRamp(m1, m2, h), hueRamp(m1, m2, h-1.0/3.0)
}

func hueRamp(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}

// viridisAnchors are sampled from the viridis colormap at t = 0, 0.25, 0.5,
// 0.75 and 1.
var viridisAnchors = [5][3]float64{
	{0.267004, 0.004874, 0.329415},
	{0.229739, 0.322361, 0.545706},
	{0.127568, 0.566949, 0.550556},
	{0.369214, 0.788888, 0.382914},
	{0.993248, 0.906157, 0.143936},
}

// viridis maps t in [0,1] onto a perceptually even dark-violet-to-yellow
// ramp by interpolating between the anchor samples.
func viridis(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(viridisAnchors)-1)
	lo := int(pos)
	if lo >= len(viridisAnchors)-1 {
		lo = len(viridisAnchors) - 2
	}
	f := pos - float64(lo)
	a, b := viridisAnchors[lo], viridisAnchors[lo+1]
	return color.RGBA{
		R: uint8(math.Round((a[0] + (b[0]-a[0])*f) * 255)),
		G: uint8(math.Round((a[1] + (b[1]-a[1])*f) * 255)),
		B: uint8(math.Round((a[2] + (b[2]-a[2])*f) * 255)),
		A: 255,
	}
}
