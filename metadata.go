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
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/fontpatch/sfnt/name"
	"seehuhn.de/go/fontpatch/sfnt/os2"
)

// PatchMetadata overwrites the PostScript name and the vertical metrics
// of a font with the values from cfg.
//
// If the font's unitsPerEm value differs from cfg.UnitsPerEm, a
// *UnitsPerEmError is returned and the font is not changed.  All tables
// are decoded before the first change is made, so that the font is also
// left unchanged if one of the tables is malformed.
//
// The "OS/2" fields sxHeight and sCapHeight only exist in table version 2
// and later.  For older tables, these values are skipped.
func PatchMetadata(f *Font, cfg *MetadataConfig) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	headInfo, err := f.Head()
	if err != nil {
		return err
	}
	if headInfo.UnitsPerEm != cfg.UnitsPerEm {
		return &UnitsPerEmError{Got: headInfo.UnitsPerEm, Want: cfg.UnitsPerEm}
	}

	nameInfo, err := f.Name()
	if err != nil {
		return err
	}
	hheaInfo, err := f.Hhea()
	if err != nil {
		return err
	}
	os2Info, err := f.OS2()
	if err != nil {
		return err
	}

	n, err := nameInfo.Set(name.PostScriptName, cfg.PostScriptName)
	if err != nil {
		return err
	}
	if n == 0 {
		logrus.Warn("font has no PostScript name records")
	}
	logrus.Debugf("PostScript name set to %q in %d records", cfg.PostScriptName, n)
	nameData, err := nameInfo.Encode()
	if err != nil {
		return err
	}

	hheaInfo.Ascent = cfg.Ascent
	hheaInfo.Descent = cfg.Descent
	hheaInfo.LineGap = cfg.LineGap
	hheaInfo.XMaxExtent = cfg.XMaxExtent
	hheaInfo.AdvanceWidthMax = cfg.AdvanceWidthMax

	os2Info.Selection = cfg.Selection
	os2Info.AvgCharWidth = cfg.AvgCharWidth
	if os2Info.Metrics == nil {
		// short version 0 table
		os2Info.Metrics = &os2.Metrics{}
	}
	os2Info.Metrics.TypoAscender = cfg.TypoAscender
	os2Info.Metrics.TypoDescender = cfg.TypoDescender
	os2Info.Metrics.TypoLineGap = cfg.TypoLineGap
	os2Info.Metrics.WinAscent = cfg.WinAscent
	os2Info.Metrics.WinDescent = cfg.WinDescent
	if os2Info.Heights != nil {
		os2Info.Heights.XHeight = cfg.XHeight
		os2Info.Heights.CapHeight = cfg.CapHeight
	} else {
		logrus.Warnf("OS/2 table version %d has no xHeight and capHeight fields",
			os2Info.Version)
	}

	f.SetTable("name", nameData)
	f.SetTable("hhea", hheaInfo.Encode())
	f.SetTable("OS/2", os2Info.Encode())
	return nil
}
