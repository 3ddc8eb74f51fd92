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

import "sync"

// A dozen-odd float32 planes live concurrently at the ink-map/auto-tune
// peak (spec.md §5); pool them by size to cut allocator churn across the
// many transforms a server handles back to back.
var float32Pools = struct {
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

func sizedFloat32Pool(size int) *sync.Pool {
	float32Pools.RLock()
	pool := float32Pools.m[size]
	float32Pools.RUnlock()
	if pool != nil {
		return pool
	}
	pool = &sync.Pool{
		New: func() interface{} {
			return make([]float32, size)
		},
	}
	float32Pools.Lock()
	float32Pools.m[size] = pool
	float32Pools.Unlock()
	return pool
}

// getFloat32 returns a zeroed []float32 of the given length, reused from
// the pool when possible.
func getFloat32(size int) []float32 {
	pool := sizedFloat32Pool(size)
	buf := pool.Get().([]float32)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// putFloat32 returns a buffer to the pool. Callers must not use arr after
// calling putFloat32.
func putFloat32(arr []float32) {
	if cap(arr) == 0 {
		return
	}
	pool := sizedFloat32Pool(cap(arr))
	pool.Put(arr[:cap(arr)])
}
