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

package raster

import "github.com/duotone-engine/inkraster/internal/preset"

// Binary is a {0,1} selection buffer, one byte per pixel.
type Binary struct {
	W, H int
	Pix  []uint8
}

func newBinary(w, h int) *Binary {
	return &Binary{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (b *Binary) clone() *Binary {
	c := newBinary(b.W, b.H)
	copy(c.Pix, b.Pix)
	return c
}

// dither implements spec.md §4.9 for the two supported modes.
func dither(ink *Plane, threshold float32, mode preset.DitherMode) *Binary {
	if mode == preset.DitherBayer {
		return ditherBayer(ink, threshold)
	}
	return ditherFloydSteinberg(ink, threshold)
}

func ditherFloydSteinberg(ink *Plane, threshold float32) *Binary {
	w, h := ink.W, ink.H
	work := append([]float32(nil), ink.Pix...)
	out := newBinary(w, h)

	at := func(x, y int) float32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return work[y*w+x]
	}
	add := func(x, y int, delta float32) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		work[y*w+x] += delta
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := at(x, y)
			sel := uint8(0)
			if v >= threshold {
				sel = 1
			}
			out.Pix[y*w+x] = sel
			errv := v - float32(sel)
			add(x+1, y, errv*7.0/16.0)
			add(x-1, y+1, errv*3.0/16.0)
			add(x, y+1, errv*5.0/16.0)
			add(x+1, y+1, errv*1.0/16.0)
		}
	}
	return out
}

var bayer8x8 = [8][8]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

func ditherBayer(ink *Plane, threshold float32) *Binary {
	w, h := ink.W, ink.H
	out := newBinary(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bias := (float32(bayer8x8[y%8][x%8])/64 - 0.5) * 0.18
			idx := y*w + x
			if ink.Pix[idx] > threshold+bias {
				out.Pix[idx] = 1
			}
		}
	}
	return out
}
