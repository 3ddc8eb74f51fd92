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

package ingest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/duotone-engine/inkraster/internal/raster"
)

// ErrEncodeFailure wraps any failure in the PNG writer, per spec.md §7.
type ErrEncodeFailure struct {
	Cause error
}

func (e *ErrEncodeFailure) Error() string {
	return fmt.Sprintf("ingest: encode failed: %s", e.Cause.Error())
}

func (e *ErrEncodeFailure) Unwrap() error { return e.Cause }

// EncodePNG renders a binary raster as a black-on-white single-channel
// PNG: 0 -> black, 1 -> white.
func EncodePNG(b *raster.Binary) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for i, v := range b.Pix {
		g := uint8(0)
		if v == 1 {
			g = 255
		}
		img.Pix[i] = g
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &ErrEncodeFailure{Cause: err}
	}
	return buf.Bytes(), nil
}

// EncodeFalseColorPNG renders a w x h image whose pixel colors come from
// colorAt (indexed row-major) as an RGBA PNG for the diagnostic endpoint,
// not the deterministic output path.
func EncodeFalseColorPNG(w, h int, colorAt func(i int) color.Color) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, colorAt(y*w+x))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &ErrEncodeFailure{Cause: err}
	}
	return buf.Bytes(), nil
}
