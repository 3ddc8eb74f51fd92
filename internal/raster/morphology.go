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

// dilate marks a pixel 1 iff any neighbor within a square structuring
// element of radius r is 1 (spec.md §4.10). r=0 is identity.
func dilate(b *Binary, r int) *Binary {
	if r <= 0 {
		return b.clone()
	}
	w, h := b.W, b.H
	out := newBinary(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			found := uint8(0)
		search:
			for dy := -r; dy <= r; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -r; dx <= r; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					if b.Pix[ny*w+nx] == 1 {
						found = 1
						break search
					}
				}
			}
			out.Pix[y*w+x] = found
		}
	}
	return out
}

// erode marks a pixel 1 iff every neighbor within a square structuring
// element of radius r is 1. r=0 is identity.
func erode(b *Binary, r int) *Binary {
	if r <= 0 {
		return b.clone()
	}
	w, h := b.W, b.H
	out := newBinary(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			all := uint8(1)
		search:
			for dy := -r; dy <= r; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					all = 0
					break search
				}
				for dx := -r; dx <= r; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w || b.Pix[ny*w+nx] == 0 {
						all = 0
						break search
					}
				}
			}
			out.Pix[y*w+x] = all
		}
	}
	return out
}

// componentStats summarizes the connected components pruning observed.
type componentStats struct {
	Count    int
	MeanArea float32
	MaxArea  int
}

// labelComponents performs 4-connected labeling via two-pass union-find,
// per spec.md §9's preference over an explicit-stack DFS. Returns a label
// per pixel (0 = background, 1..n = component id) and each component's
// area indexed by label-1.
func labelComponents(b *Binary) (labels []int32, areas []int) {
	w, h := b.W, b.H
	labels = make([]int32, w*h)
	parent := []int32{0} // parent[0] unused sentinel

	find := func(x int32) int32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int32) {
		ra, rb := find(a), find(b)
		if ra != rb {
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}
	newLabel := func() int32 {
		id := int32(len(parent))
		parent = append(parent, id)
		return id
	}

	// first pass: provisional labels + union left/up neighbors
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if b.Pix[idx] == 0 {
				continue
			}
			var left, up int32
			if x > 0 && b.Pix[idx-1] != 0 {
				left = labels[idx-1]
			}
			if y > 0 && b.Pix[idx-w] != 0 {
				up = labels[idx-w]
			}
			switch {
			case left != 0 && up != 0:
				labels[idx] = left
				union(left, up)
			case left != 0:
				labels[idx] = left
			case up != 0:
				labels[idx] = up
			default:
				labels[idx] = newLabel()
			}
		}
	}

	// second pass: resolve to root labels, compacted to 1..n
	remap := make(map[int32]int32)
	next := int32(1)
	for i, l := range labels {
		if l == 0 {
			continue
		}
		root := find(l)
		id, ok := remap[root]
		if !ok {
			id = next
			remap[root] = id
			next++
		}
		labels[i] = id
	}

	areas = make([]int, next-1)
	for _, l := range labels {
		if l > 0 {
			areas[l-1]++
		}
	}
	return labels, areas
}

// pruneComponents keeps components with area >= minArea, ranked by area
// descending, up to maxCount of them (spec.md §4.10).
func pruneComponents(b *Binary, minArea, maxCount int) (*Binary, componentStats) {
	labels, areas := labelComponents(b)
	type comp struct {
		id   int32
		area int
	}
	comps := make([]comp, len(areas))
	for i, a := range areas {
		comps[i] = comp{id: int32(i + 1), area: a}
	}
	sort.SliceStable(comps, func(i, j int) bool { return comps[i].area > comps[j].area })

	keep := make(map[int32]bool)
	kept := 0
	totalArea := 0
	maxArea := 0
	for rank, c := range comps {
		if c.area >= minArea && rank < maxCount {
			keep[c.id] = true
			kept++
			totalArea += c.area
			if c.area > maxArea {
				maxArea = c.area
			}
		}
	}

	out := newBinary(b.W, b.H)
	for i, l := range labels {
		if l > 0 && keep[l] {
			out.Pix[i] = 1
		}
	}

	stats := componentStats{Count: kept, MaxArea: maxArea}
	if kept > 0 {
		stats.MeanArea = float32(totalArea) / float32(kept)
	}
	return out, stats
}
