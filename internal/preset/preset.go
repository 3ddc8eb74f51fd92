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

// Package preset holds the named tuning bundles consumed by the raster
// engine. An unknown identifier resolves to Default ("neon-contour").
package preset

// DitherMode selects the binarization strategy used by the engine.
type DitherMode int

const (
	DitherFloyd DitherMode = iota
	DitherBayer
)

// Config bundles every numeric constant the engine needs for one preset.
// Field names and ranges follow the richer of the two preset tables
// (see spec.md §9, "Preset table divergence"): ghostWeight, bandFrequency,
// spaceiness, backgroundSuppression, lumaSuppression, isolationRadius,
// isolateWhites, minWhiteCoverageFloor, centerFocus and topSuppression
// are first-class fields, not optional extensions.
type Config struct {
	ID string

	EdgeWeight    float32
	FillWeight    float32
	TextureWeight float32
	GhostWeight   float32

	StrokeThickness int
	GrainScale      float32
	Smoothing       float32

	WhiteCoverageTarget   float32
	CoverageTolerance     float32
	ComponentMinArea      int
	ComponentMaxCount     int
	MinWhiteCoverageFloor float32

	CenterBias  float32
	EdgeGamma   float32
	FillGamma   float32
	BandFreq    float32
	Spaceiness  float32

	BackgroundSuppression float32
	LumaSuppression       float32
	CenterFocus           float32
	TopSuppression        float32

	IsolationRadius int
	IsolateWhites   bool

	Dither DitherMode
}

// DefaultID is returned by Resolve for unknown preset identifiers.
const DefaultID = "neon-contour"

var table = map[string]Config{
	"neon-contour": {
		ID:                    "neon-contour",
		EdgeWeight:            0.62,
		FillWeight:            0.22,
		TextureWeight:         0.18,
		GhostWeight:           0.05,
		StrokeThickness:       2,
		GrainScale:            6,
		Smoothing:             0.8,
		WhiteCoverageTarget:   0.13,
		CoverageTolerance:     0.025,
		ComponentMinArea:      6,
		ComponentMaxCount:     4000,
		MinWhiteCoverageFloor: 0.05,
		CenterBias:            0.35,
		EdgeGamma:             0.85,
		FillGamma:             1.3,
		BandFreq:              2.2,
		Spaceiness:            0.35,
		BackgroundSuppression: 0.55,
		LumaSuppression:       0.2,
		CenterFocus:           0.3,
		TopSuppression:        0.1,
		IsolationRadius:       0,
		IsolateWhites:         false,
		Dither:                DitherFloyd,
	},
	"silhouette-etch": {
		ID:                    "silhouette-etch",
		EdgeWeight:            0.35,
		FillWeight:            0.55,
		TextureWeight:         0.05,
		GhostWeight:           0.02,
		StrokeThickness:       3,
		GrainScale:            10,
		Smoothing:             1.4,
		WhiteCoverageTarget:   0.155,
		CoverageTolerance:     0.02,
		ComponentMinArea:      30,
		ComponentMaxCount:     600,
		MinWhiteCoverageFloor: 0.08,
		CenterBias:            0.55,
		EdgeGamma:             1.0,
		FillGamma:             0.9,
		BandFreq:              1.2,
		Spaceiness:            0.1,
		BackgroundSuppression: 0.75,
		LumaSuppression:       0.35,
		CenterFocus:           0.5,
		TopSuppression:        0.0,
		IsolationRadius:       0,
		IsolateWhites:         false,
		Dither:                DitherFloyd,
	},
	"industrial-noise": {
		ID:                    "industrial-noise",
		EdgeWeight:            0.45,
		FillWeight:            0.08,
		TextureWeight:         0.5,
		GhostWeight:           0.12,
		StrokeThickness:       1,
		GrainScale:            3,
		Smoothing:             0.3,
		WhiteCoverageTarget:   0.2,
		CoverageTolerance:     0.03,
		ComponentMinArea:      2,
		ComponentMaxCount:     8000,
		MinWhiteCoverageFloor: 0.03,
		CenterBias:            0.15,
		EdgeGamma:             0.7,
		FillGamma:             1.6,
		BandFreq:              3.4,
		Spaceiness:            0.75,
		BackgroundSuppression: 0.35,
		LumaSuppression:       0.1,
		CenterFocus:           0.1,
		TopSuppression:        0.0,
		IsolationRadius:       1,
		IsolateWhites:         true,
		Dither:                DitherBayer,
	},
	"crowd-ghost": {
		ID:                    "crowd-ghost",
		EdgeWeight:            0.3,
		FillWeight:            0.2,
		TextureWeight:         0.22,
		GhostWeight:           0.42,
		StrokeThickness:       1,
		GrainScale:            8,
		Smoothing:             1.0,
		WhiteCoverageTarget:   0.18,
		CoverageTolerance:     0.03,
		ComponentMinArea:      4,
		ComponentMaxCount:     6000,
		MinWhiteCoverageFloor: 0.06,
		CenterBias:            0.25,
		EdgeGamma:             0.9,
		FillGamma:             1.1,
		BandFreq:              1.8,
		Spaceiness:            0.55,
		BackgroundSuppression: 0.4,
		LumaSuppression:       0.15,
		CenterFocus:           0.2,
		TopSuppression:        0.25,
		IsolationRadius:       0,
		IsolateWhites:         false,
		Dither:                DitherBayer,
	},
	"topo-stroke": {
		ID:                    "topo-stroke",
		EdgeWeight:            0.7,
		FillWeight:            0.12,
		TextureWeight:         0.08,
		GhostWeight:           0.08,
		StrokeThickness:       2,
		GrainScale:            14,
		Smoothing:             1.6,
		WhiteCoverageTarget:   0.155,
		CoverageTolerance:     0.02,
		ComponentMinArea:      40,
		ComponentMaxCount:     500,
		MinWhiteCoverageFloor: 0.08,
		CenterBias:            0.45,
		EdgeGamma:             1.1,
		FillGamma:             1.0,
		BandFreq:              0.8,
		Spaceiness:            0.05,
		BackgroundSuppression: 0.6,
		LumaSuppression:       0.3,
		CenterFocus:           0.45,
		TopSuppression:        0.05,
		IsolationRadius:       0,
		IsolateWhites:         false,
		Dither:                DitherFloyd,
	},
}

// Order lists preset identifiers in a stable, documented order, for CLI
// help text and the /api/v1/presets listing.
var Order = []string{"neon-contour", "silhouette-etch", "industrial-noise", "crowd-ghost", "topo-stroke"}

// Resolve looks up a preset by id. An unknown id resolves to DefaultID,
// matching spec.md §6.
func Resolve(id string) Config {
	if cfg, ok := table[id]; ok {
		return cfg
	}
	return table[DefaultID]
}

// All returns every known preset in Order.
func All() []Config {
	out := make([]Config, 0, len(Order))
	for _, id := range Order {
		out = append(out, table[id])
	}
	return out
}
