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

import "testing"

func TestPlaneAtClampsToBounds(t *testing.T) {
	p := NewPlane(3, 2)
	p.Pix[0] = 0.5 // (0,0)
	p.Pix[5] = 0.9 // (2,1)

	if got := p.At(-5, -5); got != p.Pix[0] {
		t.Errorf("At(-5,-5) = %v, want %v", got, p.Pix[0])
	}
	if got := p.At(100, 100); got != p.Pix[5] {
		t.Errorf("At(100,100) = %v, want %v", got, p.Pix[5])
	}
}

func TestPlaneCloneIndependence(t *testing.T) {
	p := NewPlane(2, 2)
	p.Pix[0] = 0.3
	q := p.Clone()
	q.Pix[0] = 0.9
	if p.Pix[0] == q.Pix[0] {
		t.Fatal("Clone shares backing storage with original")
	}
}

func TestClamp01(t *testing.T) {
	p := &Plane{W: 1, H: 3, Pix: []float32{-1, 0.5, 2}}
	p.Clamp01()
	want := []float32{0, 0.5, 1}
	for i, v := range p.Pix {
		if v != want[i] {
			t.Errorf("Pix[%d] = %v, want %v", i, v, want[i])
		}
	}
}
