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

// Package calibrate is an offline tool for fitting a preset's edge/fill
// weights against a small corpus of reference images and a target white
// coverage. It is never imported by the engine, the server, or the
// deterministic CLI commands: Nelder-Mead's simplex search is inherently
// order- and history-dependent, which would break spec.md §8's
// determinism invariant if it ever touched the render path.
package calibrate

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/optimize"

	"github.com/duotone-engine/inkraster/internal/preset"
	"github.com/duotone-engine/inkraster/internal/raster"
)

// Sample is one reference image paired with the white coverage an
// operator judged to look right for it.
type Sample struct {
	RGB            *raster.RGB
	TargetCoverage float32
}

// Result reports the fitted weights and the residual cost.
type Result struct {
	EdgeWeight float32
	FillWeight float32
	Cost       float64
}

// Fit searches edgeWeight/fillWeight starting from base, minimizing the
// mean squared coverage error across samples, holding every other field
// of base fixed.
func Fit(base preset.Config, samples []Sample, logWriter io.Writer) (Result, error) {
	if logWriter == nil {
		logWriter = io.Discard
	}

	analyses := make([]*raster.Analysis, len(samples))
	for i, s := range samples {
		a, err := raster.Analyze(s.RGB, base, io.Discard)
		if err != nil {
			return Result{}, fmt.Errorf("calibrate: analyzing sample %d: %w", i, err)
		}
		analyses[i] = a
	}

	objective := func(x []float64) float64 {
		cfg := base
		cfg.EdgeWeight = clamp01f(x[0])
		cfg.FillWeight = clamp01f(x[1])

		var sumSq float64
		for i, a := range analyses {
			res, err := raster.Render(a, cfg, raster.FrameModulation{}, io.Discard)
			if err != nil {
				return 1e9
			}
			diff := float64(res.Metrics.WhiteRatio - samples[i].TargetCoverage)
			sumSq += diff * diff
		}
		return sumSq / float64(len(analyses))
	}

	problem := optimize.Problem{Func: objective}
	method := &optimize.NelderMead{}
	init := []float64{float64(base.EdgeWeight), float64(base.FillWeight)}

	res, err := optimize.Minimize(problem, init, nil, method)
	if err != nil {
		return Result{}, fmt.Errorf("calibrate: optimize: %w", err)
	}

	fmt.Fprintf(logWriter, "calibrate: converged to edgeWeight=%.4f fillWeight=%.4f cost=%.6f after %d iterations\n",
		res.X[0], res.X[1], res.F, res.Stats.MajorIterations)

	return Result{
		EdgeWeight: clamp01f(res.X[0]),
		FillWeight: clamp01f(res.X[1]),
		Cost:       res.F,
	}, nil
}

func clamp01f(v float64) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
