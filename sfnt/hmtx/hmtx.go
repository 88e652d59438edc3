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

// Package hmtx reads and writes the "hmtx" table of sfnt fonts.
//
// The "hmtx" table gives the advance width and left side bearing for
// every glyph.  The number of entries with an explicit advance width is
// stored in the numberOfHMetrics field of the "hhea" table; glyphs after
// these share the last advance width.
//
// The right side bearing is not stored.  It is derived from the advance
// width, the left side bearing and the glyph bounding box:
//
//	rsb = aw - (lsb + xMax - xMin)
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
package hmtx

import (
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/parser"
)

// Metric contains the horizontal metrics of one glyph.
type Metric struct {
	Width uint16      // advance width
	LSB   funit.Int16 // left side bearing
}

// Decode decodes the "hmtx" table of a font with numGlyphs glyphs,
// where numLong is the numberOfHMetrics value from the "hhea" table.
func Decode(data []byte, numGlyphs, numLong int) ([]Metric, error) {
	if numLong < 1 || numLong > numGlyphs {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    "invalid number of horizontal metrics",
		}
	}
	if len(data) < 4*numLong+2*(numGlyphs-numLong) {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    "table too short",
		}
	}

	mm := make([]Metric, numGlyphs)
	var width uint16
	for i := range mm {
		if i < numLong {
			width = uint16(data[0])<<8 | uint16(data[1])
			data = data[2:]
		}
		mm[i].Width = width
		mm[i].LSB = funit.Int16(data[0])<<8 | funit.Int16(data[1])
		data = data[2:]
	}
	return mm, nil
}

// Encode returns the binary representation of the "hmtx" table, together
// with the numberOfHMetrics value for the "hhea" table.
//
// At least minLong entries with explicit advance widths are written.  If
// minLong is zero, trailing glyphs with equal advance widths are stored
// in the compact form.
func Encode(mm []Metric, minLong int) ([]byte, uint16) {
	numGlyphs := len(mm)
	numLong := numGlyphs
	for numLong > 1 && mm[numLong-1].Width == mm[numLong-2].Width {
		numLong--
	}
	if numLong < minLong {
		numLong = min(minLong, numGlyphs)
	}

	res := make([]byte, 0, 4*numLong+2*(numGlyphs-numLong))
	for i, m := range mm {
		if i < numLong {
			res = append(res, byte(m.Width>>8), byte(m.Width))
		}
		res = append(res, byte(m.LSB>>8), byte(m.LSB))
	}
	return res, uint16(numLong)
}

// Summary holds the font-wide values of the "hhea" table which are
// derived from the horizontal metrics.
type Summary struct {
	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16
}

// Summarize computes the "hhea" summary values for the given metrics.
// The slice bbox gives the glyph bounding boxes.  Glyphs with an empty
// bounding box are ignored for the side bearing values.
func Summarize(mm []Metric, bbox []funit.Rect16) *Summary {
	s := &Summary{}
	first := true
	for i, m := range mm {
		if m.Width > s.AdvanceWidthMax {
			s.AdvanceWidthMax = m.Width
		}

		if i >= len(bbox) || bbox[i].IsZero() {
			continue
		}
		ext := int32(bbox[i].URx) - int32(bbox[i].LLx)
		lsb := m.LSB
		rsb := clamp(int32(m.Width) - int32(lsb) - ext)
		xExtent := clamp(int32(lsb) + ext)
		if first || lsb < s.MinLeftSideBearing {
			s.MinLeftSideBearing = lsb
		}
		if first || rsb < s.MinRightSideBearing {
			s.MinRightSideBearing = rsb
		}
		if first || xExtent > s.XMaxExtent {
			s.XMaxExtent = xExtent
		}
		first = false
	}
	return s
}

// clamp converts x to funit.Int16, saturating at the ends of the range.
func clamp(x int32) funit.Int16 {
	return funit.Int16(max(min(x, math.MaxInt16), math.MinInt16))
}
