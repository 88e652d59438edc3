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
	"bytes"

	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/maxp"

	"seehuhn.de/go/fontpatch/sfnt/head"
	"seehuhn.de/go/fontpatch/sfnt/hhea"
	"seehuhn.de/go/fontpatch/sfnt/hmtx"
	"seehuhn.de/go/fontpatch/sfnt/name"
	"seehuhn.de/go/fontpatch/sfnt/os2"
)

// Head decodes the "head" table.
func (f *Font) Head() (*head.Table, error) {
	data, err := f.Table("head")
	if err != nil {
		return nil, err
	}
	return head.Decode(data)
}

// Hhea decodes the "hhea" table.
func (f *Font) Hhea() (*hhea.Table, error) {
	data, err := f.Table("hhea")
	if err != nil {
		return nil, err
	}
	return hhea.Decode(data)
}

// OS2 decodes the "OS/2" table.
func (f *Font) OS2() (*os2.Table, error) {
	data, err := f.Table("OS/2")
	if err != nil {
		return nil, err
	}
	return os2.Decode(data)
}

// Name decodes the "name" table.
func (f *Font) Name() (*name.Table, error) {
	data, err := f.Table("name")
	if err != nil {
		return nil, err
	}
	return name.Decode(data)
}

// NumGlyphs returns the number of glyphs, as recorded in the "maxp" table.
func (f *Font) NumGlyphs() (int, error) {
	data, err := f.Table("maxp")
	if err != nil {
		return 0, err
	}
	maxpInfo, err := maxp.Read(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	return maxpInfo.NumGlyphs, nil
}

// Metrics decodes the "hmtx" table.
// The number of long metrics is taken from hheaInfo.
func (f *Font) Metrics(hheaInfo *hhea.Table) ([]hmtx.Metric, error) {
	numGlyphs, err := f.NumGlyphs()
	if err != nil {
		return nil, err
	}
	data, err := f.Table("hmtx")
	if err != nil {
		return nil, err
	}
	return hmtx.Decode(data, numGlyphs, int(hheaInfo.NumOfLongHorMetrics))
}

// Glyphs decodes the "glyf" and "loca" tables.
// The loca format is taken from headInfo.
func (f *Font) Glyphs(headInfo *head.Table) (glyf.Glyphs, error) {
	glyfData, err := f.Table("glyf")
	if err != nil {
		return nil, err
	}
	locaData, err := f.Table("loca")
	if err != nil {
		return nil, err
	}
	return glyf.Decode(&glyf.Encoded{
		GlyfData:   glyfData,
		LocaData:   locaData,
		LocaFormat: headInfo.IndexToLocFormat,
	})
}
