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

func TestPercentileNormalizeStretchesFullRange(t *testing.T) {
	w, h := 16, 16
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = float32(i) / float32(len(p.Pix)-1) // 0..1 ramp
	}
	out := percentileNormalize(p, 0.02, 0.98)

	minV, maxV := float32(1), float32(0)
	for _, v := range out.Pix {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		if v < 0 || v > 1 {
			t.Fatalf("normalized pixel out of [0,1]: %v", v)
		}
	}
	if maxV < 0.9 {
		t.Errorf("expected normalized range to reach near 1, got max %v", maxV)
	}
}

func TestPercentileNormalizeIdempotentWithinOneLSB(t *testing.T) {
	w, h := 20, 20
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = float32(i%13) / 12
	}
	once := percentileNormalize(p, 0.02, 0.98)
	twice := percentileNormalize(once, 0.02, 0.98)

	for i := range once.Pix {
		if d := absf(once.Pix[i] - twice.Pix[i]); d > 1.0/255.0+1e-6 {
			t.Fatalf("pixel %d moved by %v on re-normalization, exceeds 1/255", i, d)
		}
	}
}

func TestQuantileThresholdMonotone(t *testing.T) {
	w, h := 10, 10
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = float32(i) / float32(len(p.Pix)-1)
	}
	low := quantileThreshold(p, 0.1)
	high := quantileThreshold(p, 0.9)
	if low > high {
		t.Errorf("quantileThreshold(0.1)=%v > quantileThreshold(0.9)=%v", low, high)
	}
}
