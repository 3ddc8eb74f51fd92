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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// deterministicGrain is a pure function of (x,y) producing a uniform
// scalar in [0,1) (spec.md §4.7). It must not depend on iteration order
// or process state, so it is built from a fixed-width hash of the
// coordinate pair rather than a seeded PRNG.
func deterministicGrain(x, y int) float32 {
	var key [8]byte
	binary.LittleEndian.PutUint32(key[0:4], uint32(int32(x)))
	binary.LittleEndian.PutUint32(key[4:8], uint32(int32(y)))
	h := xxhash.Sum64(key[:])
	// Keep the top 24 bits: wide enough for a decorrelated scalar, narrow
	// enough that the division below is exact in float32.
	return float32(h>>40) / float32(1<<24)
}
