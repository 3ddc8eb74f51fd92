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

import "math"

// Gradients holds the result of the 3x3 Sobel operator (spec.md §4.4):
// signed gx/gy and a max-normalized magnitude in [0,1].
type Gradients struct {
	Gx, Gy, Mag *Plane
}

func sobel(p *Plane) *Gradients {
	w, h := p.W, p.H
	gx := NewPlane(w, h)
	gy := NewPlane(w, h)
	mag := NewPlane(w, h)

	maxMag := float32(0)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			tl := p.Pix[(y-1)*w+(x-1)]
			tc := p.Pix[(y-1)*w+x]
			tr := p.Pix[(y-1)*w+(x+1)]
			ml := p.Pix[y*w+(x-1)]
			mr := p.Pix[y*w+(x+1)]
			bl := p.Pix[(y+1)*w+(x-1)]
			bc := p.Pix[(y+1)*w+x]
			br := p.Pix[(y+1)*w+(x+1)]

			sx := (tr + 2*mr + br) - (tl + 2*ml + bl)
			sy := (bl + 2*bc + br) - (tl + 2*tc + tr)
			m := float32(math.Sqrt(float64(sx*sx + sy*sy)))

			idx := y*w + x
			gx.Pix[idx] = sx
			gy.Pix[idx] = sy
			mag.Pix[idx] = m
			if m > maxMag {
				maxMag = m
			}
		}
	}

	scale := 1 / (maxMag + 1e-6)
	for i, v := range mag.Pix {
		mag.Pix[i] = v * scale
	}

	return &Gradients{Gx: gx, Gy: gy, Mag: mag}
}
