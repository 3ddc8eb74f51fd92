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

import "errors"

// Error kinds the core itself can surface, per spec.md §7's taxonomy.
// InvalidPreset is rejected before the core ever sees it; Segmentation
// and coverage recoveries are absorbed internally and only visible
// through Metrics, never returned as errors.
var (
	ErrUnsupportedDimensions = errors.New("raster: zero width or height")
)
