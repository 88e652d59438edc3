// seehuhn.de/go/fontpatch - patch metrics and names in sfnt font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package outline moves and reorients TrueType glyph outlines.
//
// The functions in this package operate on the glyph data from
// [seehuhn.de/go/sfnt/glyf].  Glyphs which are not changed keep their
// binary representation.
package outline

import (
	"errors"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

// ErrCoordinateRange indicates that a glyph could not be moved,
// because its coordinates would no longer fit into 16 bits.
var ErrCoordinateRange = errors.New("sfnt/outline: coordinate out of range")

// BBox returns the union of the bounding boxes of all non-empty glyphs.
func BBox(gg glyf.Glyphs) funit.Rect16 {
	var bbox funit.Rect16
	first := true
	for _, g := range gg {
		if g == nil || g.Rect16.IsZero() {
			continue
		}
		if first {
			bbox = g.Rect16
			first = false
			continue
		}
		bbox = funit.Rect16{
			LLx: min(bbox.LLx, g.LLx),
			LLy: min(bbox.LLy, g.LLy),
			URx: max(bbox.URx, g.URx),
			URy: max(bbox.URy, g.URy),
		}
	}
	return bbox
}

// Extents returns the bounding boxes of all glyphs.
// Empty glyphs have a zero rectangle.
func Extents(gg glyf.Glyphs) []funit.Rect16 {
	res := make([]funit.Rect16, len(gg))
	for i, g := range gg {
		if g != nil {
			res[i] = g.Rect16
		}
	}
	return res
}

// translate moves every point of the outline right by dx.
// If a coordinate would leave the range of funit.Int16,
// ErrCoordinateRange is returned and the outline is not changed.
func translate(info *glyf.SimpleUnpacked, dx funit.Int16) error {
	for _, c := range info.Contours {
		for _, p := range c {
			if !fitsInt16(int32(p.X) + int32(dx)) {
				return ErrCoordinateRange
			}
		}
	}
	for _, c := range info.Contours {
		for j := range c {
			c[j].X += dx
		}
	}
	return nil
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf#simpleGlyphFlags
const (
	flagRepeat        = 0x08
	flagOverlapSimple = 0x40
)

// firstFlag returns the position of the first point flag in the
// encoded glyph data, or -1 if the glyph has no points.
func firstFlag(g glyf.SimpleGlyph) int {
	buf := g.Encoded
	pos := 2 * int(g.NumContours)
	if g.NumContours <= 0 || len(buf) < pos+2 {
		return -1
	}
	pos += 2 + (int(buf[pos])<<8 | int(buf[pos+1]))
	if pos >= len(buf) {
		return -1
	}
	return pos
}

// hasOverlap reports whether the OVERLAP_SIMPLE flag is set.
func hasOverlap(g glyf.SimpleGlyph) bool {
	pos := firstFlag(g)
	return pos >= 0 && g.Encoded[pos]&flagOverlapSimple != 0
}

// pack encodes an outline.  If overlap is set, the OVERLAP_SIMPLE flag
// is set on the first point only.
func pack(info *glyf.SimpleUnpacked, overlap bool) glyf.SimpleGlyph {
	g := info.Pack()
	pos := firstFlag(g)
	if !overlap || pos < 0 {
		return g
	}

	buf := g.Encoded
	flag := buf[pos]
	if flag&flagRepeat == 0 {
		buf[pos] |= flagOverlapSimple
		return g
	}

	// split the first point off the run of repeated flags
	count := buf[pos+1]
	res := make([]byte, 0, len(buf)+1)
	res = append(res, buf[:pos]...)
	res = append(res, (flag&^flagRepeat)|flagOverlapSimple)
	switch count {
	case 0:
	case 1:
		res = append(res, flag&^flagRepeat)
	default:
		res = append(res, flag, count-1)
	}
	res = append(res, buf[pos+2:]...)
	g.Encoded = res
	return g
}

func fitsInt16[T constraints.Integer](x T) bool {
	return int64(x) >= -32768 && int64(x) <= 32767
}
