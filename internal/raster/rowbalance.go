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

import "github.com/duotone-engine/inkraster/internal/qsort"

// rebalanceRows implements spec.md §4.8: equalize the ink map's per-row
// mean over active (fgMask >= 0.15) pixels against the 60th-percentile
// active row, smoothing the resulting per-row gain with a radius-10 box.
func rebalanceRows(ink, fg *Plane) *Plane {
	w, h := ink.W, ink.H
	rowMean := make([]float32, h)
	activeCount := make([]int, h)

	for y := 0; y < h; y++ {
		sum := float32(0)
		count := 0
		for x := 0; x < w; x++ {
			idx := y*w + x
			if fg.Pix[idx] >= 0.15 {
				sum += ink.Pix[idx]
				count++
			}
		}
		activeCount[y] = count
		if count > 0 {
			rowMean[y] = sum / float32(count)
		}
	}

	var activeRows []float32
	for y := 0; y < h; y++ {
		if float32(activeCount[y]) > 0.08*float32(w) {
			activeRows = append(activeRows, rowMean[y])
		}
	}

	minActive := maxInt(8, roundF(0.1*float32(h)))
	if len(activeRows) < minActive {
		return ink
	}

	qsort.SortFloat32(activeRows)
	targetIdx := int(0.6 * float32(len(activeRows)-1))
	target := activeRows[targetIdx]

	const eps = 1e-6
	gain := make([]float32, h)
	for y := 0; y < h; y++ {
		if activeCount[y] == 0 {
			gain[y] = 1
			continue
		}
		base := rowMean[y]
		if base < eps {
			base = eps
		}
		raw := target / base
		gain[y] = 0.4 + 2.6*clampf((raw-0.4)/2.6, 0, 1)
	}

	gainPlane := &Plane{W: h, H: 1, Pix: gain}
	smoothGain := boxBlur(gainPlane, 10).Pix

	out := NewPlane(w, h)
	for y := 0; y < h; y++ {
		g := smoothGain[y]
		for x := 0; x < w; x++ {
			idx := y*w + x
			out.Pix[idx] = clamp01(ink.Pix[idx] * g)
		}
	}
	return out
}
