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

// Package ingest is the ingest/egress boundary around the deterministic
// core: it decodes uploaded image bytes of any supported format into the
// engine's interleaved RGB buffer, bounds the longer edge to a fixed size, and
// encodes the engine's binary raster back out as a one-bit-looking PNG.
package ingest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"

	"github.com/duotone-engine/inkraster/internal/raster"
)

// MaxEdge is the longer-edge bound applied by Decode, matching
// SPEC_FULL.md's ingest contract.
const MaxEdge = 1024

func init() {
	// Registering nativewebp alongside the stdlib codecs lets image.Decode
	// transparently accept WebP uploads without a cgo dependency.
	image.RegisterFormat("webp", "RIFF????WEBP", nativewebp.Decode)
}

// ErrDecodeFailure wraps any failure to interpret the input bytes as an
// image, per spec.md §7's DecodeFailure taxonomy entry.
type ErrDecodeFailure struct {
	Cause error
}

func (e *ErrDecodeFailure) Error() string {
	return fmt.Sprintf("ingest: decode failed: %s", e.Cause.Error())
}

func (e *ErrDecodeFailure) Unwrap() error { return e.Cause }

// Decode reads arbitrary image bytes, corrects EXIF orientation, flattens
// alpha against white, and bounds the longer edge to MaxEdge before
// handing the engine a tightly packed RGB8 buffer.
func Decode(data []byte) (*raster.RGB, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ErrDecodeFailure{Cause: err}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxEdge || h > MaxEdge {
		if w >= h {
			img = imaging.Resize(img, MaxEdge, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxEdge, imaging.Lanczos)
		}
		bounds = img.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}

	return toRGB(flattenAlpha(img), w, h), nil
}

// flattenAlpha composites img over an opaque white background, so
// translucent PNGs and WebP images don't carry premultiplication
// artifacts into the grayscale stage.
func flattenAlpha(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := imaging.New(bounds.Dx(), bounds.Dy(), image.White)
	return imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)
}

func toRGB(img image.Image, w, h int) *raster.RGB {
	pix := make([]uint8, w*h*3)
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			idx := (y*w + x) * 3
			pix[idx+0] = uint8(r >> 8)
			pix[idx+1] = uint8(g >> 8)
			pix[idx+2] = uint8(bl >> 8)
		}
	}
	return &raster.RGB{W: w, H: h, Pix: pix}
}
