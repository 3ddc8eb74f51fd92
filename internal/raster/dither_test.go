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

import (
	"testing"

	"github.com/duotone-engine/inkraster/internal/preset"
)

func TestDitherStrictBinariness(t *testing.T) {
	w, h := 12, 12
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = float32(i%7) / 6
	}
	for _, mode := range []preset.DitherMode{preset.DitherFloyd, preset.DitherBayer} {
		out := dither(p, 0.5, mode)
		for i, v := range out.Pix {
			if v != 0 && v != 1 {
				t.Fatalf("mode %v: pixel %d = %v, want 0 or 1", mode, i, v)
			}
		}
	}
}

func TestDitherAllBlackStaysBlack(t *testing.T) {
	w, h := 8, 8
	p := NewPlane(w, h) // all zero
	for _, mode := range []preset.DitherMode{preset.DitherFloyd, preset.DitherBayer} {
		out := dither(p, 0.5, mode)
		for i, v := range out.Pix {
			if v != 0 {
				t.Fatalf("mode %v: all-black input produced white pixel %d", mode, i)
			}
		}
	}
}

func TestDitherAllWhitePullsCoverageUp(t *testing.T) {
	w, h := 8, 8
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = 1
	}
	out := dither(p, 0.5, preset.DitherFloyd)
	ones := 0
	for _, v := range out.Pix {
		if v == 1 {
			ones++
		}
	}
	if ones == 0 {
		t.Fatal("all-white input produced zero white pixels")
	}
}
