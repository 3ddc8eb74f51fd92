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

// normalizeIllumination implements spec.md §4.3: homomorphic division by
// a large-radius blur, log compression, a double percentile stretch, and
// a high-pass rebalance, closing with one more percentile stretch.
func normalizeIllumination(gray *Plane) *Plane {
	w, h := gray.W, gray.H
	minDim := w
	if h < minDim {
		minDim = h
	}
	largeR := int(0.03 * float32(minDim))
	if largeR < 6 {
		largeR = 6
	}

	l := boxBlur(gray, largeR)

	homo := NewPlane(w, h)
	for i, g := range gray.Pix {
		ratio := g / (l.Pix[i] + 1e-6)
		homo.Pix[i] = float32(math.Log(1 + 1.5*float64(ratio)))
	}

	n := percentileNormalize(homo, 0.01, 0.99)
	n = percentileNormalize(n, 0.02, 0.98)

	m := boxBlur(n, 2)
	rebalanced := NewPlane(w, h)
	for i, v := range n.Pix {
		rebalanced.Pix[i] = clamp01(0.72*v + 0.28*(v-m.Pix[i]+0.5))
	}

	return percentileNormalize(rebalanced, 0.01, 0.99)
}
