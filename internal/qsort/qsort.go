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

// Package qsort provides in-place quickselect/quicksort over float32
// slices. The engine uses it for percentiles of small working buffers:
// a quickselect median of the smoothed row energies, and a full ascending
// sort of the active row means.
package qsort

// SortFloat32 sorts a in ascending order. a must not contain NaN.
func SortFloat32(a []float32) {
	if len(a) > 1 {
		index := partitionFloat32(a)
		SortFloat32(a[:index+1])
		SortFloat32(a[index+1:])
	}
}

func partitionFloat32(a []float32) int {
	left, right := 0, len(a)-1
	mid := (left + right) >> 1
	pivot := a[mid]
	l := left - 1
	r := right + 1
	for {
		for {
			l++
			if a[l] >= pivot {
				break
			}
		}
		for {
			r--
			if a[r] <= pivot {
				break
			}
		}
		if l >= r {
			return r
		}
		a[l], a[r] = a[r], a[l]
	}
}

// SelectMedianFloat32 returns the median of a, partially reordering it.
// For an even length it returns the upper of the two middle elements.
// a must not contain NaN.
func SelectMedianFloat32(a []float32) float32 {
	return SelectFloat32(a, (len(a)>>1)+1)
}

// SelectPercentileFloat32 returns the value at the given percentile
// (0..1) of a, partially reordering it. a must not contain NaN.
func SelectPercentileFloat32(a []float32, percentile float32) float32 {
	if len(a) == 0 {
		return 0
	}
	k := int(percentile*float32(len(a)-1)) + 1
	if k < 1 {
		k = 1
	}
	if k > len(a) {
		k = len(a)
	}
	return SelectFloat32(a, k)
}

// SelectFloat32 returns the kth lowest element (1-indexed) of a, partially
// reordering it. a must not contain NaN.
func SelectFloat32(a []float32, k int) float32 {
	left, right := 0, len(a)-1
	for left < right {
		mid := (left + right) >> 1
		pivot := a[mid]
		l, r := left-1, right+1
		for {
			for {
				l++
				if a[l] >= pivot {
					break
				}
			}
			for {
				r--
				if a[r] <= pivot {
					break
				}
			}
			if l >= r {
				break
			}
			a[l], a[r] = a[r], a[l]
		}
		index := r
		offset := index - left + 1
		if k <= offset {
			right = index
		} else {
			left = index + 1
			k = k - offset
		}
	}
	return a[left]
}
