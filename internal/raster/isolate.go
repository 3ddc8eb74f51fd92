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

import "sort"

// isolateWhitePixels implements spec.md §4.11: thin clumps of white
// pixels down to their strongest isolated points, ranked by guide value
// descending (ties broken by original index), rejecting any pixel within
// an L1 (diamond) neighborhood of radius r of an already-accepted pixel.
// radius 0 is identity.
func isolateWhitePixels(b *Binary, guide *Plane, radius int) *Binary {
	if radius <= 0 {
		return b.clone()
	}
	w, h := b.W, b.H

	var idxs []int32
	for i, v := range b.Pix {
		if v == 1 {
			idxs = append(idxs, int32(i))
		}
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return guide.Pix[idxs[i]] > guide.Pix[idxs[j]]
	})

	out := newBinary(w, h)
	var accepted []int32

	for _, idx := range idxs {
		x, y := int(idx)%w, int(idx)/w
		blocked := false
		for _, a := range accepted {
			ax, ay := int(a)%w, int(a)/w
			if absInt(ax-x)+absInt(ay-y) <= radius {
				blocked = true
				break
			}
		}
		if !blocked {
			accepted = append(accepted, idx)
			out.Pix[idx] = 1
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
