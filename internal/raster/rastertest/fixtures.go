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

// Package rastertest builds synthetic RGB fixtures for the raster package's
// tests. It is test-only: the fastrand generator used for noise fixtures
// must never leak into the deterministic engine itself.
package rastertest

import (
	"github.com/valyala/fastrand"

	"github.com/duotone-engine/inkraster/internal/raster"
)

// Solid returns a W x H image filled with one RGB value.
func Solid(w, h int, r, g, b uint8) *raster.RGB {
	pix := make([]uint8, w*h*3)
	for i := 0; i < w*h; i++ {
		pix[i*3+0] = r
		pix[i*3+1] = g
		pix[i*3+2] = b
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}

// Checkerboard returns a W x H image of alternating black/white squares of
// the given size.
func Checkerboard(w, h, square int) *raster.RGB {
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if ((x/square)+(y/square))%2 == 0 {
				v = 255
			}
			idx := (y*w + x) * 3
			pix[idx+0], pix[idx+1], pix[idx+2] = v, v, v
		}
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}

// HorizontalGradient returns a W x H image ramping from black to white
// left to right.
func HorizontalGradient(w, h int) *raster.RGB {
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255 * x / maxInt(1, w-1))
			idx := (y*w + x) * 3
			pix[idx+0], pix[idx+1], pix[idx+2] = v, v, v
		}
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}

// Disk returns a W x H black image with a centered white disk of the
// given radius.
func Disk(w, h, radius int) *raster.RGB {
	pix := make([]uint8, w*h*3)
	cx, cy := w/2, h/2
	r2 := radius * radius
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			v := uint8(0)
			if dx*dx+dy*dy <= r2 {
				v = 255
			}
			idx := (y*w + x) * 3
			pix[idx+0], pix[idx+1], pix[idx+2] = v, v, v
		}
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}

// Noise returns a W x H image of uniform random grayscale noise from a
// non-reproducible generator; the engine itself never imports fastrand,
// and tests built on Noise must only assert structural properties, never
// exact pixel values.
func Noise(w, h int) *raster.RGB {
	rng := fastrand.RNG{}
	pix := make([]uint8, w*h*3)
	for i := 0; i < w*h; i++ {
		v := uint8(rng.Uint32n(256))
		pix[i*3+0], pix[i*3+1], pix[i*3+2] = v, v, v
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
