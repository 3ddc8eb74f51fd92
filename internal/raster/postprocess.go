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

import "github.com/duotone-engine/inkraster/internal/preset"

// postProcess implements spec.md §4.10's post-processing sequence:
// stroke-thickness dilation/erosion (or spaceiness-gated open), component
// pruning and optional white-pixel isolation.
func postProcess(raw *Binary, inkMap *Plane, p preset.Config, skipIsolation bool) (*Binary, componentStats) {
	b := raw

	switch {
	case p.StrokeThickness > 1:
		b = dilate(b, p.StrokeThickness-1)
		if p.Spaceiness < 0.7 {
			b = erode(b, 1)
		}
	case p.Spaceiness < 0.7:
		b = erode(b, 1)
		b = dilate(b, 1)
	}

	minArea := maxInt(1, roundF(float32(p.ComponentMinArea)*(1-0.7*p.Spaceiness)))
	maxCount := maxInt(1000, roundF(float32(p.ComponentMaxCount)*(1+0.25*p.Spaceiness)))

	b, stats := pruneComponents(b, minArea, maxCount)

	if p.IsolateWhites && !skipIsolation {
		b = isolateWhitePixels(b, inkMap, p.IsolationRadius)
		_, stats = labelAndStats(b)
	}

	return b, stats
}

func labelAndStats(b *Binary) (*Binary, componentStats) {
	_, areas := labelComponents(b)
	stats := componentStats{Count: len(areas)}
	total := 0
	for _, a := range areas {
		total += a
		if a > stats.MaxArea {
			stats.MaxArea = a
		}
	}
	if stats.Count > 0 {
		stats.MeanArea = float32(total) / float32(stats.Count)
	}
	return b, stats
}
