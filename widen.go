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

package fontpatch

import (
	"math"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/parser"

	"seehuhn.de/go/fontpatch/sfnt/hmtx"
	"seehuhn.de/go/fontpatch/sfnt/outline"
)

// WidenResult summarises the changes made by [WidenGlyphs].
type WidenResult struct {
	// Widened lists the glyphs which were given the new width.
	Widened []glyph.ID

	// Reversed is the number of contours whose direction was corrected.
	Reversed int

	// Unmatched lists composite glyphs with components positioned by
	// point matching, which could not be corrected for moved components.
	Unmatched []glyph.ID
}

// WidenGlyphs changes the advance width of all glyphs which have exactly
// the width cfg.SourceWidth to cfg.TargetWidth.  The outlines of these
// glyphs are moved right by half the width difference, and the
// contour directions of the moved glyphs are normalised.
//
// The "hmtx", "glyf", "loca", "head" and "hhea" tables are updated, and
// the "hdmx" table, which caches the old widths, is removed.
// If no glyph has the source width, the font is not changed.
func WidenGlyphs(f *Font, cfg *WidthConfig) (*WidenResult, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if !f.Has("glyf") && (f.Has("CFF ") || f.Has("CFF2")) {
		return nil, &parser.NotSupportedError{
			SubSystem: "fontpatch",
			Feature:   "CFF glyph outlines",
		}
	}

	headInfo, err := f.Head()
	if err != nil {
		return nil, err
	}
	hheaInfo, err := f.Hhea()
	if err != nil {
		return nil, err
	}
	mm, err := f.Metrics(hheaInfo)
	if err != nil {
		return nil, err
	}

	res := &WidenResult{}
	margin := cfg.margin()
	shift := make([]funit.Int16, len(mm))
	for i, m := range mm {
		if m.Width != cfg.SourceWidth {
			continue
		}
		newLSB := math.Trunc(float64(m.LSB) + margin)
		if newLSB > math.MaxInt16 {
			return nil, &parser.InvalidFontError{
				SubSystem: "fontpatch",
				Reason:    "left side bearing out of range",
			}
		}
		gid := glyph.ID(i)
		logrus.WithField("glyph", gid).Debugf("width %d -> %d, lsb %d -> %g",
			m.Width, cfg.TargetWidth, m.LSB, newLSB)
		shift[i] = funit.Int16(newLSB) - m.LSB
		mm[i] = hmtx.Metric{Width: cfg.TargetWidth, LSB: funit.Int16(newLSB)}
		res.Widened = append(res.Widened, gid)
	}
	if len(res.Widened) == 0 {
		logrus.Debugf("no glyphs of width %d found", cfg.SourceWidth)
		return res, nil
	}

	gg, err := f.Glyphs(headInfo)
	if err != nil {
		return nil, err
	}
	if len(gg) < len(mm) {
		return nil, &parser.InvalidFontError{
			SubSystem: "fontpatch",
			Reason:    "loca table too short",
		}
	}

	res.Unmatched, err = outline.Shift(gg, shift)
	if err != nil {
		return nil, err
	}
	for _, gid := range res.Unmatched {
		logrus.WithField("glyph", gid).Warn("cannot move components positioned by point matching")
	}
	for _, gid := range res.Widened {
		n, err := outline.CorrectGlyph(gg[gid])
		if err != nil {
			return nil, err
		}
		if n > 0 {
			logrus.WithField("glyph", gid).Debugf("reversed %d contours", n)
		}
		res.Reversed += n
	}

	enc := gg.Encode()
	headInfo.IndexToLocFormat = enc.LocaFormat
	headInfo.SetFontBBox(outline.BBox(gg))

	hmtxData, numLong := hmtx.Encode(mm, 0)
	summary := hmtx.Summarize(mm, outline.Extents(gg))
	hheaInfo.AdvanceWidthMax = summary.AdvanceWidthMax
	hheaInfo.MinLeftSideBearing = summary.MinLeftSideBearing
	hheaInfo.MinRightSideBearing = summary.MinRightSideBearing
	hheaInfo.XMaxExtent = summary.XMaxExtent
	hheaInfo.NumOfLongHorMetrics = numLong

	f.SetTable("glyf", enc.GlyfData)
	f.SetTable("loca", enc.LocaData)
	f.SetTable("head", headInfo.Encode())
	f.SetTable("hhea", hheaInfo.Encode())
	f.SetTable("hmtx", hmtxData)
	f.RemoveTable("hdmx")

	return res, nil
}
