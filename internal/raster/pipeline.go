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
	"io"

	"github.com/duotone-engine/inkraster/internal/preset"
	"github.com/duotone-engine/inkraster/internal/rlog"
)

// Analysis is the expensive, frame-independent half of the pipeline:
// grayscale through light transfer (spec.md §4.1-§4.6). It is computed
// once per source image and preset (foreground estimation reads the
// preset's CenterBias) and replayed across many Render calls, e.g. once
// per animation frame, at a fraction of the cost of a full transform.
type Analysis struct {
	W, H int

	Norm          *Plane
	Grad          *Gradients
	Foreground    *ForegroundResult
	LightTransfer *LightTransfer
}

// Fallback reports whether foreground estimation fell back to treating
// the whole frame as foreground (spec.md §8 "fallback honesty").
func (a *Analysis) Fallback() bool { return a.Foreground.Fallback }

// Analyze runs stages 1-5 once per source image: grayscale conversion,
// illumination normalization, Sobel gradients, foreground estimation and
// anchor-locked light transfer. Foreground estimation's center-prior term
// is weighted by p.CenterBias (spec.md §4.5/§6), so the result depends on
// both the input image and the preset, matching spec.md §9's design note.
// It is reused across any number of Render calls made with that same
// preset.
func Analyze(rgb *RGB, p preset.Config, logWriter io.Writer) (*Analysis, error) {
	if logWriter == nil {
		logWriter = rlog.Discard.Writer()
	}
	if rgb.W <= 0 || rgb.H <= 0 {
		return nil, ErrUnsupportedDimensions
	}

	gray := Grayscale(rgb)
	norm := normalizeIllumination(gray)
	grad := sobel(norm)
	fg := estimateForeground(norm, grad, p.CenterBias)
	lt := buildLightTransfer(norm, grad, fg.Mask)

	return &Analysis{
		W: rgb.W, H: rgb.H,
		Norm:          norm,
		Grad:          grad,
		Foreground:    fg,
		LightTransfer: lt,
	}, nil
}

// Result is the outcome of one Render call: the final dithered binary
// raster plus the metrics describing how it was reached (spec.md §6).
type Result struct {
	Binary  *Binary
	Metrics Metrics
}

// Render runs stage 6 onward: ink-map construction under the given
// preset and frame modulation, followed by the auto-tune loop that picks
// a dither threshold and post-processing pass (spec.md §4.7-§4.12).
func Render(a *Analysis, p preset.Config, mod FrameModulation, logWriter io.Writer) (*Result, error) {
	if logWriter == nil {
		logWriter = rlog.Discard.Writer()
	}

	ink := buildInkMap(a.Norm, a.LightTransfer, a.Grad, a.Foreground.Mask, p, mod)
	tuned := autoTune(ink, a.Grad, p, logWriter)
	tuned.metrics.FallbackSegmentation = a.Foreground.Fallback

	return &Result{Binary: tuned.binary, Metrics: tuned.metrics}, nil
}

// Transform is the convenience one-shot entry point for callers that
// need neither analysis reuse nor frame modulation: single image in,
// single binary raster out.
func Transform(rgb *RGB, p preset.Config, logWriter io.Writer) (*Result, error) {
	a, err := Analyze(rgb, p, logWriter)
	if err != nil {
		return nil, err
	}
	return Render(a, p, FrameModulation{}, logWriter)
}
