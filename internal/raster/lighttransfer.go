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

import "github.com/duotone-engine/inkraster/internal/qsort"

// LightTransfer holds the anchor-locked tone field and the per-row
// foreground energy equalizer (spec.md §4.6).
type LightTransfer struct {
	LockedTone *Plane
	RowGain    []float32 // len == H
}

// buildLightTransfer implements spec.md §4.6: it anchors tone to the
// pixel of maximum foreground-weighted detail inside an inner crop, then
// derives a per-row gain that equalizes foreground ink energy vertically.
func buildLightTransfer(norm *Plane, grad *Gradients, fg *Plane) *LightTransfer {
	w, h := norm.W, norm.H

	localLightR := int(0.06*float32(minInt(w, h)) + 0.5)
	if localLightR < 10 {
		localLightR = 10
	}
	localLight := boxBlur(norm, localLightR)

	detail := NewPlane(w, h)
	for i, n := range norm.Pix {
		detail.Pix[i] = absf(n - localLight.Pix[i])
	}

	x0, x1 := int(0.15*float32(w)), int(0.85*float32(w))
	y0, y1 := int(0.2*float32(h)), int(0.9*float32(h))

	anchor := -1
	bestScore := float32(-1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := y*w + x
			s := fg.Pix[idx] * (0.52*grad.Mag.Pix[idx] + 0.48*detail.Pix[idx])
			if s > bestScore {
				bestScore = s
				anchor = idx
			}
		}
	}
	if anchor < 0 {
		anchor = 0
	}

	refTone := norm.Pix[anchor]
	refDetail := detail.Pix[anchor]

	lockedTone := NewPlane(w, h)
	gain := 1.1 + 1.6*refDetail
	for i, n := range norm.Pix {
		lockedTone.Pix[i] = clamp01(refTone + (n-localLight.Pix[i])*gain)
	}

	rowEnergy := make([]float32, h)
	for y := 0; y < h; y++ {
		sum := float32(0)
		for x := 0; x < w; x++ {
			idx := y*w + x
			sum += fg.Pix[idx] * (0.55*grad.Mag.Pix[idx] + 0.45*absf(lockedTone.Pix[idx]-refTone))
		}
		rowEnergy[y] = sum / float32(w)
	}

	rowEnergyPlane := &Plane{W: h, H: 1, Pix: rowEnergy}
	smoothEnergyPlane := boxBlur(rowEnergyPlane, 6)
	smoothEnergy := smoothEnergyPlane.Pix

	medianBuf := append([]float32(nil), smoothEnergy...)
	median := qsort.SelectMedianFloat32(medianBuf)

	rowGain := make([]float32, h)
	const eps = 1e-6
	for y := 0; y < h; y++ {
		denom := smoothEnergy[y]
		if denom < eps {
			denom = eps
		}
		rowGain[y] = 0.72 + 0.56*clampf(median/denom, 0, 1)
	}

	return &LightTransfer{LockedTone: lockedTone, RowGain: rowGain}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
