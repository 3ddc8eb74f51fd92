// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package diag renders diagnostic false-color visualizations of
// intermediate engine buffers (foreground mask, ink map) for the debug
// endpoint. None of this package is on the deterministic output path:
// it exists purely to let an operator eyeball why a transform landed
// where it did.
package diag

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HeatColor maps a scalar in [0,1] to a perceptually smooth blue-to-red
// hue sweep, the same Hcl/Hsv color math the teacher applies to its own
// HSL channel operations, repurposed here for visualization rather than
// color grading.
func HeatColor(v float32) color.Color {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	hue := 240.0 * (1 - float64(v)) // blue (cold/low) -> red (hot/high)
	c := colorful.Hsv(hue, 0.85, 0.95).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ColorAtFunc returns a per-index color lookup over a flat [0,1] buffer,
// suitable for ingest.EncodeFalseColorPNG.
func ColorAtFunc(pix []float32) func(i int) color.Color {
	return func(i int) color.Color {
		return HeatColor(pix[i])
	}
}
