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
	"math"

	"github.com/duotone-engine/inkraster/internal/preset"
)

// FrameModulation is the optional per-frame animation hook (spec.md §6).
// Sequencing phase/flowStrength/jitter across frames is the caller's
// concern; the engine only consults these three scalars.
type FrameModulation struct {
	Phase        float32
	FlowStrength float32
	Jitter       float32
}

// buildInkMap implements spec.md §4.7: a weighted blend of edge, fill,
// detail, oriented texture, deterministic grain and flowing band
// modulation, gated by background suppression, luminance prior, center
// field, top fade and row gain, then smoothed, row-rebalanced and
// percentile-normalized.
func buildInkMap(norm *Plane, lt *LightTransfer, grad *Gradients, fg *Plane, p preset.Config, mod FrameModulation) *Plane {
	w, h := norm.W, norm.H

	blurred2 := boxBlur(norm, 2)
	detail := NewPlane(w, h)
	for i, n := range norm.Pix {
		detail.Pix[i] = absf(n - blurred2.Pix[i])
	}

	midR := maxInt(2, roundF(0.5*p.GrainScale))
	farR := maxInt(4, roundF(1.5*p.GrainScale))
	edgeNear := boxBlur(grad.Mag, 1)
	edgeMid := boxBlur(grad.Mag, midR)
	edgeFar := boxBlur(grad.Mag, farR)

	grainScale := p.GrainScale
	if grainScale < 1 {
		grainScale = 1
	}

	ink := NewPlane(w, h)
	const eps = 1e-6

	for y := 0; y < h; y++ {
		yNorm := float32(y) / float32(maxInt(1, h-1))
		dy := (float32(y) - 0.58*float32(h)) / (0.34 * float32(h))
		topFade := 1 - p.TopSuppression*clampf((0.28-yNorm)/0.28, 0, 1)
		rg := lt.RowGain[y]

		for x := 0; x < w; x++ {
			idx := y*w + x
			dx := (float32(x) - 0.5*float32(w)) / (0.34 * float32(w))

			magv := grad.Mag.Pix[idx]
			edge := powf(magv, p.EdgeGamma)
			fill := powf(lt.LockedTone.Pix[idx], p.FillGamma) * fg.Pix[idx]

			angle := float32(math.Atan2(float64(grad.Gy.Pix[idx]+eps), float64(grad.Gx.Pix[idx]+eps)))
			oriented := (float32(x)*cosf(angle) + float32(y)*sinf(angle)) / maxF(1, grainScale)
			stripe := 0.5*sinf(2.2*oriented+2.6*angle+0.7*mod.Phase) + 0.5
			noise := deterministicGrain(x, y)
			texture := clamp01(0.75*stripe + noise*(0.32+0.12*mod.Jitter))

			flow := clamp01(0.35*edgeNear.Pix[idx] + 0.35*edgeMid.Pix[idx] + 0.30*edgeFar.Pix[idx])
			wave := lt.LockedTone.Pix[idx]*1.6 + flow*2.4 + oriented*0.08 + mod.Phase
			ghostBand := powf(absf(sinf(float32(math.Pi)*p.BandFreq*wave)), 2.2) * powf(flow, 0.9)

			stippleKeep := float32(0.45)
			if noise > 0.72*p.Spaceiness {
				stippleKeep = 1
			}

			bgKill := powf(fg.Pix[idx], 0.8+p.BackgroundSuppression)
			darkPrior := powf(1-lt.LockedTone.Pix[idx], 0.8+p.LumaSuppression)
			lumaGate := 0.2 + 0.8*darkPrior

			centerField := expf(-(dx*dx + dy*dy))
			centerGate := (1 - p.CenterFocus) + p.CenterFocus*clampf(0.35+0.65*centerField, 0, 1)

			flowBoost := 1 + mod.FlowStrength*(flow-0.45)*0.3

			v := p.EdgeWeight*edge +
				p.FillWeight*fill +
				0.28*detail.Pix[idx]*fg.Pix[idx] +
				p.TextureWeight*texture*fg.Pix[idx] +
				p.GhostWeight*ghostBand*fg.Pix[idx]

			v *= (0.3 + 0.7*bgKill) * lumaGate * centerGate * topFade * rg * stippleKeep * flowBoost

			ink.Pix[idx] = clamp01(v)
		}
	}

	smoothed := boxBlur(ink, maxInt(0, roundF(p.Smoothing)))
	rebalanced := rebalanceRows(smoothed, fg)
	return percentileNormalize(rebalanced, 0.01, 0.99)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func roundF(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

func powf(base, exp float32) float32 {
	if base <= 0 {
		if exp == 0 {
			return 1
		}
		return 0
	}
	return float32(math.Pow(float64(base), float64(exp)))
}

func expf(v float32) float32 {
	return float32(math.Exp(float64(v)))
}

func sinf(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func cosf(v float32) float32 {
	return float32(math.Cos(float64(v)))
}
