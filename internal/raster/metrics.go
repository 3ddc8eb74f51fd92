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

// Metrics reports the observable outcome of one Render call (spec.md §6).
type Metrics struct {
	WhiteRatio           float32 `json:"whiteRatio"`
	ComponentCount       int     `json:"componentCount"`
	MeanComponentArea    float32 `json:"meanComponentArea"`
	MaxComponentArea     int     `json:"maxComponentArea"`
	EdgeAlignmentScore   float32 `json:"edgeAlignmentScore"`
	FallbackSegmentation bool    `json:"fallbackSegmentation"`
	TunedIterations      int     `json:"tunedIterations"`

	// winningIteration is the index of the best-cost iteration, not the
	// last-run one; it is readable only through WinningIteration and is not
	// serialized or reported by any endpoint (see spec.md §9 "open source
	// ambiguity" and SPEC_FULL.md's Open Question decision).
	// TunedIterations itself always reports the final loop index per the
	// specified (not the alternate) behavior.
	winningIteration int
}

// WinningIteration exposes the debug-only best-iteration index described
// in SPEC_FULL.md's Open Question decisions.
func (m Metrics) WinningIteration() int { return m.winningIteration }

func whiteRatio(b *Binary) float32 {
	ones := 0
	for _, v := range b.Pix {
		if v == 1 {
			ones++
		}
	}
	return float32(ones) / float32(len(b.Pix))
}

func edgeAlignmentScore(b *Binary, mag *Plane) float32 {
	white := 0
	aligned := 0
	for i, v := range b.Pix {
		if v != 1 {
			continue
		}
		white++
		if mag.Pix[i] >= 0.2 {
			aligned++
		}
	}
	if white == 0 {
		return 0
	}
	return float32(aligned) / float32(white)
}

func bandDensities(b *Binary, topRows int) (topDensity, lowDensity float32) {
	w, h := b.W, b.H
	if topRows > h {
		topRows = h
	}
	topPixels, topArea := 0, topRows*w
	lowPixels, lowArea := 0, (h-topRows)*w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Pix[y*w+x] != 1 {
				continue
			}
			if y < topRows {
				topPixels++
			} else {
				lowPixels++
			}
		}
	}
	if topArea > 0 {
		topDensity = float32(topPixels) / float32(topArea)
	}
	if lowArea > 0 {
		lowDensity = float32(lowPixels) / float32(lowArea)
	}
	return topDensity, lowDensity
}
