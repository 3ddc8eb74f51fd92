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
	"fmt"
	"io"
	"math"

	"github.com/duotone-engine/inkraster/internal/preset"
)

const autoTuneMaxIterations = 8

type tunedResult struct {
	binary   *Binary
	metrics  Metrics
	iteration int
}

// autoTune implements spec.md §4.12: it runs up to 8 dither/post-process
// iterations, minimizing a composite coverage/component/edge/topology
// cost, then applies the rescue pass if the best run is coverage-starved.
func autoTune(inkMap *Plane, grad *Gradients, p preset.Config, logWriter io.Writer) tunedResult {
	best := runTuneLoop(inkMap, grad, p, logWriter)

	if best.metrics.WhiteRatio < 0.9*p.MinWhiteCoverageFloor {
		fmt.Fprintf(logWriter, "coverage %.4f below rescue floor %.4f, boosting ink map\n",
			best.metrics.WhiteRatio, 0.9*p.MinWhiteCoverageFloor)
		boosted := rescueBoost(inkMap)
		rescued := runTuneLoop(boosted, grad, p, logWriter)
		rescued.metrics.TunedIterations = autoTuneMaxIterations
		rescued.metrics.winningIteration = rescued.iteration
		return rescued
	}

	best.metrics.TunedIterations = autoTuneMaxIterations
	best.metrics.winningIteration = best.iteration
	return best
}

func runTuneLoop(inkMap *Plane, grad *Gradients, p preset.Config, logWriter io.Writer) tunedResult {
	w, h := inkMap.W, inkMap.H
	topRows := roundF(0.28 * float32(h))

	threshold := 0.34 + 0.04*p.Spaceiness
	step := float32(0.16)
	bestCost := float32(math.MaxFloat32)
	var best tunedResult

	for i := 1; i <= autoTuneMaxIterations; i++ {
		raw := dither(inkMap, threshold, p.Dither)
		post, cc := postProcess(raw, inkMap, p, false)

		coverage := whiteRatio(post)
		if coverage < p.MinWhiteCoverageFloor && p.IsolateWhites {
			alt, altCC := postProcess(raw, inkMap, p, true)
			altCoverage := whiteRatio(alt)
			if altCoverage >= coverage {
				post, cc, coverage = alt, altCC, altCoverage
			}
		}

		a := edgeAlignmentScore(post, grad.Mag)
		topDensity, lowDensity := bandDensities(post, topRows)

		tol := p.CoverageTolerance
		if tol < 0.01 {
			tol = 0.01
		}
		cost := absf(coverage-p.WhiteCoverageTarget) / tol
		if cc.Count > p.ComponentMaxCount {
			cost += float32(cc.Count-p.ComponentMaxCount) / float32(maxInt(1, p.ComponentMaxCount))
		}
		if cc.Count == 0 {
			cost += 2
		}
		cost += 1.4 * maxF(0, 0.28-a)
		cost += 18 * maxF(0, topDensity-1.15*lowDensity)

		fmt.Fprintf(logWriter, "autotune iter %d: threshold %.4f coverage %.4f components %d edgeAlign %.3f cost %.4f\n",
			i, threshold, coverage, cc.Count, a, cost)

		if cost < bestCost {
			bestCost = cost
			best = tunedResult{
				binary: post,
				metrics: Metrics{
					WhiteRatio:         coverage,
					ComponentCount:     cc.Count,
					MeanComponentArea:  cc.MeanArea,
					MaxComponentArea:   cc.MaxArea,
					EdgeAlignmentScore: a,
				},
				iteration: i,
			}
		}

		if coverage > p.WhiteCoverageTarget {
			threshold += step
		} else {
			threshold -= step
		}
		threshold = clampf(threshold, 0, 1)
		step *= 0.62
	}

	if best.binary == nil {
		best.binary = newBinary(w, h)
	}
	return best
}

// rescueBoost re-normalizes the ink map with wider percentiles and applies
// a gamma-like boost, per spec.md §4.12's rescue pass.
func rescueBoost(inkMap *Plane) *Plane {
	renormed := percentileNormalize(inkMap, 0.005, 0.985)
	out := NewPlane(renormed.W, renormed.H)
	for i, v := range renormed.Pix {
		out.Pix[i] = clamp01(powf(v, 0.74) * 1.35)
	}
	return out
}
