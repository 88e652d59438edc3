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

// Package testfont generates small TrueType fonts for use in unit tests.
package testfont

import (
	"bytes"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/fontpatch/sfnt/head"
	"seehuhn.de/go/fontpatch/sfnt/hhea"
	"seehuhn.de/go/fontpatch/sfnt/hmtx"
	"seehuhn.de/go/fontpatch/sfnt/name"
	"seehuhn.de/go/fontpatch/sfnt/os2"
	"seehuhn.de/go/fontpatch/sfnt/outline"
)

// Options describes a font to be generated.
type Options struct {
	UnitsPerEm uint16
	Glyphs     glyf.Glyphs
	Metrics    []hmtx.Metric

	// OS2Version is the version of the generated "OS/2" table.
	OS2Version uint16

	PostScriptName string

	// Extra contains additional tables to include in the font.
	Extra map[string][]byte

	// CFF generates an OpenType font with a dummy "CFF " table
	// instead of "glyf" and "loca".
	CFF bool
}

// Make returns the binary representation of a font.
// Make panics if the options are inconsistent.
func Make(opt *Options) []byte {
	numGlyphs := len(opt.Metrics)
	if !opt.CFF && len(opt.Glyphs) != numGlyphs {
		panic("number of glyphs and metrics differ")
	}

	tables := make(map[string][]byte)
	for name, data := range opt.Extra {
		tables[name] = data
	}

	headInfo := &head.Table{}
	headInfo.Version = 0x00010000
	headInfo.FontRevision = 0x00010000
	headInfo.MagicNumber = 0x5F0F3CF5
	headInfo.Flags = 0x000B
	headInfo.UnitsPerEm = opt.UnitsPerEm
	headInfo.Created = 0x00000000DD4A7A00
	headInfo.Modified = 0x00000000DD4A7A00

	var bboxes []funit.Rect16
	scalerType := header.ScalerTypeTrueType
	if opt.CFF {
		scalerType = header.ScalerTypeCFF
		tables["CFF "] = []byte{1, 0, 4, 1}
	} else {
		enc := opt.Glyphs.Encode()
		tables["glyf"] = enc.GlyfData
		tables["loca"] = enc.LocaData
		headInfo.IndexToLocFormat = enc.LocaFormat
		headInfo.SetFontBBox(outline.BBox(opt.Glyphs))
		bboxes = outline.Extents(opt.Glyphs)
	}
	tables["head"] = headInfo.Encode()

	hmtxData, numLong := hmtx.Encode(opt.Metrics, 0)
	tables["hmtx"] = hmtxData
	summary := hmtx.Summarize(opt.Metrics, bboxes)
	hheaInfo := &hhea.Table{}
	hheaInfo.Version = 0x00010000
	hheaInfo.Ascent = 1800
	hheaInfo.Descent = -400
	hheaInfo.LineGap = 100
	hheaInfo.AdvanceWidthMax = summary.AdvanceWidthMax
	hheaInfo.MinLeftSideBearing = summary.MinLeftSideBearing
	hheaInfo.MinRightSideBearing = summary.MinRightSideBearing
	hheaInfo.XMaxExtent = summary.XMaxExtent
	hheaInfo.CaretSlopeRise = 1
	hheaInfo.NumOfLongHorMetrics = numLong
	tables["hhea"] = hheaInfo.Encode()

	maxp := []byte{0x00, 0x00, 0x50, 0x00, byte(numGlyphs >> 8), byte(numGlyphs)}
	if !opt.CFF {
		maxp = make([]byte, 32)
		maxp[1] = 0x01
		maxp[4] = byte(numGlyphs >> 8)
		maxp[5] = byte(numGlyphs)
	}
	tables["maxp"] = maxp

	os2Info := &os2.Table{
		Base: os2.Base{
			Version:      opt.OS2Version,
			AvgCharWidth: 1000,
			WeightClass:  400,
			WidthClass:   5,
			VendID:       [4]byte{'T', 'E', 'S', 'T'},
			Selection:    os2.SelectionBold,
		},
		Metrics: &os2.Metrics{
			TypoAscender:  1800,
			TypoDescender: -400,
			TypoLineGap:   100,
			WinAscent:     2000,
			WinDescent:    500,
		},
	}
	if opt.OS2Version >= 1 {
		os2Info.CodePages = &os2.CodePages{Range: [2]uint32{1, 0}}
	}
	if opt.OS2Version >= 2 {
		os2Info.Heights = &os2.Heights{XHeight: 900, CapHeight: 1300}
	}
	if opt.OS2Version >= 5 {
		os2Info.OpticalSize = &os2.OpticalSize{UpperPointSize: 0xFFFF}
	}
	tables["OS/2"] = os2Info.Encode()

	nameInfo := &name.Table{
		Records: []*name.Record{
			{PlatformID: name.PlatformMacintosh, NameID: name.Family},
			{PlatformID: name.PlatformMacintosh, NameID: name.PostScriptName},
			{PlatformID: name.PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: name.Family},
			{PlatformID: name.PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: name.PostScriptName},
			{PlatformID: name.PlatformWindows, EncodingID: 1, LanguageID: 0x0407, NameID: name.PostScriptName},
		},
	}
	for _, rec := range nameInfo.Records {
		val := "Test Font"
		if rec.NameID == name.PostScriptName {
			val = opt.PostScriptName
		}
		if err := rec.SetString(val); err != nil {
			panic(err)
		}
	}
	nameData, err := nameInfo.Encode()
	if err != nil {
		panic(err)
	}
	tables["name"] = nameData

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, scalerType, tables)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Square returns a square contour.  Outer contours of TrueType glyphs
// run clockwise, holes run counter-clockwise.
func Square(x0, y0, x1, y1 funit.Int16, clockwise bool) glyf.Contour {
	if clockwise {
		return glyf.Contour{
			{X: x0, Y: y0, OnCurve: true},
			{X: x0, Y: y1, OnCurve: true},
			{X: x1, Y: y1, OnCurve: true},
			{X: x1, Y: y0, OnCurve: true},
		}
	}
	return glyf.Contour{
		{X: x0, Y: y0, OnCurve: true},
		{X: x1, Y: y0, OnCurve: true},
		{X: x1, Y: y1, OnCurve: true},
		{X: x0, Y: y1, OnCurve: true},
	}
}

// Simple returns a simple glyph with the given contours.
func Simple(instructions []byte, contours ...glyf.Contour) *glyf.Glyph {
	info := &glyf.SimpleUnpacked{
		Contours:     contours,
		Instructions: instructions,
	}
	g := info.AsGlyph()
	return &g
}

// Composite returns a composite glyph which places the given glyph at
// offset (dx, dy).  The bounding box is the one of the component, moved
// by the offset.
func Composite(component *glyf.Glyph, gid glyph.ID, dx, dy int8) *glyf.Glyph {
	bbox := component.Rect16
	bbox.LLx += funit.Int16(dx)
	bbox.URx += funit.Int16(dx)
	bbox.LLy += funit.Int16(dy)
	bbox.URy += funit.Int16(dy)
	return &glyf.Glyph{
		Rect16: bbox,
		Data: glyf.CompositeGlyph{
			Components: []glyf.GlyphComponent{{
				Flags:      glyf.FlagArgsAreXYValues | glyf.FlagUseMyMetrics,
				GlyphIndex: gid,
				Data:       []byte{byte(dx), byte(dy)},
			}},
		},
	}
}

// Sample describes a small icon font:
//
//   - glyph 0 (.notdef) is 1024 units wide,
//   - glyph 1 is a full width (2048) icon with a hole and hinting instructions,
//   - glyph 2 is an empty full width glyph,
//   - glyph 3 is 1000 units wide,
//   - glyph 4 is a full width composite of glyph 1,
//   - glyph 5 is a composite of glyph 1, 1200 units wide,
//   - glyph 6 is a full width icon with its outer contour running the
//     wrong way.
func Sample() *Options {
	icon := Simple([]byte{0xB0, 0x01},
		Square(100, 0, 1900, 1800, true),
		Square(500, 400, 1500, 1400, false))
	gg := glyf.Glyphs{
		Simple(nil, Square(50, 0, 974, 1400, true)),
		icon,
		nil,
		Simple(nil, Square(100, 0, 900, 700, true)),
		Composite(icon, 1, 0, 0),
		Composite(icon, 1, -50, 10),
		Simple(nil, Square(200, 0, 1848, 1600, false)),
	}
	mm := []hmtx.Metric{
		{Width: 1024, LSB: 50},
		{Width: 2048, LSB: 100},
		{Width: 2048, LSB: 0},
		{Width: 1000, LSB: 100},
		{Width: 2048, LSB: 100},
		{Width: 1200, LSB: 50},
		{Width: 2048, LSB: 200},
	}
	return &Options{
		UnitsPerEm:     2048,
		Glyphs:         gg,
		Metrics:        mm,
		OS2Version:     4,
		PostScriptName: "TestFont-Regular",
		Extra: map[string][]byte{
			"hdmx": {0, 0, 0, 0, 0, 0, 0, 0},
			"post": {0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	}
}
