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

package outline

import (
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// Shift moves glyph outlines horizontally.  Glyph i is moved to the right
// by shift[i] font units.  Glyphs beyond the end of shift are not moved.
//
// Composite glyphs are moved by their own shift value.  The component
// offsets are corrected for the movement of the component glyphs, so that
// every composite glyph keeps its shape.  Components which are positioned
// by point matching cannot be corrected; the IDs of composite glyphs with
// such components are returned.
//
// If an error is returned, some glyphs may already have been moved.
func Shift(gg glyf.Glyphs, shift []funit.Int16) ([]glyph.ID, error) {
	shiftOf := func(gid int) funit.Int16 {
		if gid < len(shift) {
			return shift[gid]
		}
		return 0
	}

	var unmatched []glyph.ID
	for i, g := range gg {
		if g == nil {
			continue
		}
		s := shiftOf(i)

		switch d := g.Data.(type) {
		case glyf.SimpleGlyph:
			if s == 0 {
				continue
			}
			info, err := d.Unpack()
			if err != nil {
				return nil, err
			}
			err = translate(info, s)
			if err != nil {
				return nil, err
			}
			err = moveBBox(g, s)
			if err != nil {
				return nil, err
			}
			g.Data = pack(info, hasOverlap(d))

		case glyf.CompositeGlyph:
			changed := s != 0
			ok := true
			comps := make([]glyf.GlyphComponent, len(d.Components))
			for j, c := range d.Components {
				sc := shiftOf(int(c.GlyphIndex))
				if s != 0 || sc != 0 {
					var fixed bool
					var err error
					c, fixed, err = compensate(c, s, sc)
					if err != nil {
						return nil, err
					}
					ok = ok && fixed
					changed = true
				}
				comps[j] = c
			}
			if !ok {
				unmatched = append(unmatched, glyph.ID(i))
			}
			if !changed {
				continue
			}
			err := moveBBox(g, s)
			if err != nil {
				return nil, err
			}
			g.Data = glyf.CompositeGlyph{
				Components:   comps,
				Instructions: d.Instructions,
			}
		}
	}
	return unmatched, nil
}

func moveBBox(g *glyf.Glyph, s funit.Int16) error {
	if s == 0 || g.Rect16.IsZero() {
		return nil
	}
	if !fitsInt16(int32(g.LLx)+int32(s)) || !fitsInt16(int32(g.URx)+int32(s)) {
		return ErrCoordinateRange
	}
	g.LLx += s
	g.URx += s
	return nil
}

// Flags which are not represented in glyf.ComponentUnpacked.
const keepFlags = glyf.FlagWeHaveInstructions |
	glyf.FlagScaledComponentOffset |
	glyf.FlagUnscaledComponentOffset |
	0xE010

// compensate changes the offset of a component, when the composite glyph
// is moved by s and the component glyph has been moved by sc.
// The boolean result is false for point matched components which
// are not moved by exactly the right amount.
func compensate(c glyf.GlyphComponent, s, sc funit.Int16) (glyf.GlyphComponent, bool, error) {
	if c.Flags&glyf.FlagArgsAreXYValues == 0 {
		return c, s == sc, nil
	}
	cu, err := c.Unpack()
	if err != nil {
		return c, false, err
	}

	a, b, cc, d := cu.Trfm[0], cu.Trfm[1], cu.Trfm[2], cu.Trfm[3]
	var ex, ey float64
	if cu.ScaledComponentOffset {
		// The offset is transformed together with the component outline.
		det := a*d - b*cc
		if det == 0 {
			return c, false, nil
		}
		ex = d*float64(s)/det - float64(sc)
		ey = -b * float64(s) / det
	} else {
		ex = float64(s) - a*float64(sc)
		ey = -b * float64(sc)
	}

	x := math.Round(cu.Trfm[4] + ex)
	y := math.Round(cu.Trfm[5] + ey)
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return c, false, ErrCoordinateRange
	}
	if x == cu.Trfm[4] && y == cu.Trfm[5] {
		return c, true, nil
	}
	cu.Trfm[4] = x
	cu.Trfm[5] = y

	res := cu.Pack()
	res.Flags = res.Flags&^(glyf.FlagScaledComponentOffset|glyf.FlagUnscaledComponentOffset) |
		c.Flags&keepFlags
	return res, true, nil
}
