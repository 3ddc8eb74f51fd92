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

package raster_test

import (
	"math"
	"testing"

	"github.com/duotone-engine/inkraster/internal/preset"
	"github.com/duotone-engine/inkraster/internal/raster"
	"github.com/duotone-engine/inkraster/internal/raster/rastertest"
)

func mustTransform(t *testing.T, rgb *raster.RGB, p preset.Config) *raster.Result {
	t.Helper()
	res, err := raster.Transform(rgb, p, nil)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	return res
}

func TestStrictBinariness(t *testing.T) {
	rgb := rastertest.Checkerboard(64, 64, 8)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))
	for i, v := range res.Binary.Pix {
		if v != 0 && v != 1 {
			t.Fatalf("pixel %d = %v, want 0 or 1", i, v)
		}
	}
}

func TestDeterminismAcrossRuns(t *testing.T) {
	rgb := rastertest.Checkerboard(48, 48, 6)
	p := preset.Resolve("neon-contour")
	a := mustTransform(t, rgb, p)
	b := mustTransform(t, rgb, p)

	if a.Binary.W != b.Binary.W || a.Binary.H != b.Binary.H {
		t.Fatalf("dimensions differ between runs")
	}
	for i := range a.Binary.Pix {
		if a.Binary.Pix[i] != b.Binary.Pix[i] {
			t.Fatalf("byte %d differs between identical runs: %v != %v", i, a.Binary.Pix[i], b.Binary.Pix[i])
		}
	}
	if a.Metrics != b.Metrics {
		t.Fatalf("metrics differ between identical runs: %+v != %+v", a.Metrics, b.Metrics)
	}
}

func TestDimensionPreservation(t *testing.T) {
	rgb := rastertest.HorizontalGradient(77, 33)
	res := mustTransform(t, rgb, preset.Resolve("silhouette-etch"))
	if res.Binary.W != 77 || res.Binary.H != 33 {
		t.Fatalf("got %dx%d, want 77x33", res.Binary.W, res.Binary.H)
	}
}

func TestCoverageBound(t *testing.T) {
	rgb := rastertest.Checkerboard(64, 64, 8)
	p := preset.Resolve("neon-contour")
	res := mustTransform(t, rgb, p)

	tol := p.CoverageTolerance
	if tol < 0.02 {
		tol = 0.02
	}
	diff := float32(math.Abs(float64(res.Metrics.WhiteRatio - p.WhiteCoverageTarget)))
	if diff > tol && res.Metrics.WhiteRatio < 0.8*p.MinWhiteCoverageFloor {
		t.Fatalf("coverage %v neither within tolerance of target %v nor above starved floor %v",
			res.Metrics.WhiteRatio, p.WhiteCoverageTarget, 0.8*p.MinWhiteCoverageFloor)
	}
}

func TestIterationCap(t *testing.T) {
	rgb := rastertest.Checkerboard(32, 32, 4)
	res := mustTransform(t, rgb, preset.Resolve("industrial-noise"))
	if res.Metrics.TunedIterations < 1 || res.Metrics.TunedIterations > 8 {
		t.Fatalf("tunedIterations = %d, outside [1,8]", res.Metrics.TunedIterations)
	}
}

func TestSolidMidGrayNotMixed(t *testing.T) {
	rgb := rastertest.Solid(32, 32, 128, 128, 128)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))

	ones, zeros := 0, 0
	for _, v := range res.Binary.Pix {
		if v == 1 {
			ones++
		} else {
			zeros++
		}
	}
	if ones != 0 && zeros != 0 {
		// Solid fields carry no edges and no detail, so the blend should
		// collapse to one extreme, not a mixture with local structure.
		if ones > 0 && zeros > 0 && ones < len(res.Binary.Pix) && zeros < len(res.Binary.Pix) {
			// allow a handful of stray pixels from texture/grain terms,
			// but not a substantial mixed population
			minority := ones
			if zeros < minority {
				minority = zeros
			}
			if float64(minority)/float64(len(res.Binary.Pix)) > 0.05 {
				t.Fatalf("solid mid-gray produced a mixed result: %d ones, %d zeros", ones, zeros)
			}
		}
	}
}

func TestBoundarySinglePixel(t *testing.T) {
	rgb := rastertest.Solid(1, 1, 128, 128, 128)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))
	if res.Binary.W != 1 || res.Binary.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", res.Binary.W, res.Binary.H)
	}
}

func TestBoundarySingleRow(t *testing.T) {
	rgb := rastertest.HorizontalGradient(20, 1)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))
	if res.Binary.W != 20 || res.Binary.H != 1 {
		t.Fatalf("got %dx%d, want 20x1", res.Binary.W, res.Binary.H)
	}
}

func TestBoundaryZeroDimensionsRejected(t *testing.T) {
	rgb := &raster.RGB{W: 0, H: 0, Pix: nil}
	_, err := raster.Analyze(rgb, preset.Resolve("neon-contour"), nil)
	if err != raster.ErrUnsupportedDimensions {
		t.Fatalf("got err %v, want ErrUnsupportedDimensions", err)
	}
}

func TestAllBlackInputYieldsNoComponents(t *testing.T) {
	rgb := rastertest.Solid(40, 40, 0, 0, 0)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))
	if res.Metrics.ComponentCount != 0 {
		t.Fatalf("componentCount = %d, want 0 for all-black input", res.Metrics.ComponentCount)
	}
	if res.Metrics.EdgeAlignmentScore != 0 {
		t.Fatalf("edgeAlignmentScore = %v, want 0 for all-black input", res.Metrics.EdgeAlignmentScore)
	}
}

func TestCheckerboardScenario(t *testing.T) {
	rgb := rastertest.Checkerboard(64, 64, 8)
	res := mustTransform(t, rgb, preset.Resolve("neon-contour"))

	if res.Metrics.WhiteRatio < 0.09 || res.Metrics.WhiteRatio > 0.17 {
		t.Errorf("whiteRatio = %v, want within [0.09, 0.17]", res.Metrics.WhiteRatio)
	}
	if res.Metrics.ComponentCount < 8 {
		t.Errorf("componentCount = %d, want >= 8", res.Metrics.ComponentCount)
	}
	if res.Metrics.FallbackSegmentation {
		t.Errorf("fallbackSegmentation = true, want false")
	}
}

func TestCenteredDiskScenario(t *testing.T) {
	rgb := rastertest.Disk(256, 256, 80)
	res := mustTransform(t, rgb, preset.Resolve("topo-stroke"))

	if res.Metrics.WhiteRatio < 0.12 || res.Metrics.WhiteRatio > 0.19 {
		t.Errorf("whiteRatio = %v, want within [0.12, 0.19]", res.Metrics.WhiteRatio)
	}
	if res.Metrics.MaxComponentArea < 1500 {
		t.Errorf("maxComponentArea = %d, want >= 1500", res.Metrics.MaxComponentArea)
	}
}

func TestRepeatedTransformBytewiseEqual(t *testing.T) {
	rgb := rastertest.Checkerboard(200, 200, 10)
	p := preset.Resolve("neon-contour")
	first := mustTransform(t, rgb, p)
	second := mustTransform(t, rgb, p)
	if first.Metrics != second.Metrics {
		t.Fatalf("metrics differ across back-to-back transforms")
	}
	for i := range first.Binary.Pix {
		if first.Binary.Pix[i] != second.Binary.Pix[i] {
			t.Fatalf("pixel %d differs across back-to-back transforms", i)
		}
	}
}

func TestFrameModulationVariesOutputWithinCoverageTolerance(t *testing.T) {
	rgb := rastertest.Checkerboard(64, 64, 8)
	p := preset.Resolve("crowd-ghost")

	a, err := raster.Analyze(rgb, p, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	phases := []float32{0, math.Pi / 2, math.Pi}
	var results []*raster.Result
	for _, phase := range phases {
		res, err := raster.Render(a, p, raster.FrameModulation{Phase: phase}, nil)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		results = append(results, res)
	}

	tol := p.CoverageTolerance
	for _, res := range results {
		diff := float32(math.Abs(float64(res.Metrics.WhiteRatio - p.WhiteCoverageTarget)))
		if diff > tol {
			t.Errorf("phase result whiteRatio %v outside tolerance %v of target %v", res.Metrics.WhiteRatio, tol, p.WhiteCoverageTarget)
		}
	}

	differs := false
	for i := range results[0].Binary.Pix {
		if results[0].Binary.Pix[i] != results[1].Binary.Pix[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Errorf("different phases produced byte-identical output")
	}
}

func TestCenterBiasVariesForegroundMask(t *testing.T) {
	rgb := rastertest.Disk(96, 96, 30)

	low := preset.Resolve("industrial-noise") // CenterBias 0.15
	high := preset.Resolve("silhouette-etch") // CenterBias 0.55
	if low.CenterBias >= high.CenterBias {
		t.Fatalf("test fixture presets must have distinct CenterBias, got %v and %v", low.CenterBias, high.CenterBias)
	}

	aLow, err := raster.Analyze(rgb, low, nil)
	if err != nil {
		t.Fatalf("Analyze(low) failed: %v", err)
	}
	aHigh, err := raster.Analyze(rgb, high, nil)
	if err != nil {
		t.Fatalf("Analyze(high) failed: %v", err)
	}

	differs := false
	for i := range aLow.Foreground.Mask.Pix {
		if aLow.Foreground.Mask.Pix[i] != aHigh.Foreground.Mask.Pix[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Errorf("foreground masks identical across presets with different CenterBias")
	}
}
