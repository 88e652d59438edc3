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
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontpatch/sfnt/os2"
)

// WidthConfig describes the glyph widths changed by [WidenGlyphs].
type WidthConfig struct {
	// SourceWidth is the advance width of the glyphs to be changed.
	// Only glyphs with exactly this width are modified.
	SourceWidth uint16

	// TargetWidth is the new advance width.  The glyph outlines are
	// moved right by half the difference between the two widths.
	TargetWidth uint16
}

// SeagullFlagsWidths widens the full-width glyphs of the Seagull Flags
// icon font from a square em to the width of the flag icons.
var SeagullFlagsWidths = &WidthConfig{
	SourceWidth: 2048,
	TargetWidth: 2812,
}

// Validate checks the configuration for consistency.
func (cfg *WidthConfig) Validate() error {
	if cfg.TargetWidth < cfg.SourceWidth {
		return fmt.Errorf("target width %d is smaller than source width %d",
			cfg.TargetWidth, cfg.SourceWidth)
	}
	return nil
}

// margin is the distance by which glyph outlines are moved.
func (cfg *WidthConfig) margin() float64 {
	return float64(int(cfg.TargetWidth)-int(cfg.SourceWidth)) / 2
}

// MetadataConfig lists the values written by [PatchMetadata].
type MetadataConfig struct {
	// UnitsPerEm is the required size of the design grid.  Fonts with a
	// different value are not modified.
	UnitsPerEm uint16

	// PostScriptName replaces all name records with name ID 6.
	PostScriptName string

	// Values for the "hhea" table.
	Ascent          funit.Int16
	Descent         funit.Int16
	LineGap         funit.Int16
	XMaxExtent      funit.Int16
	AdvanceWidthMax uint16

	// Values for the "OS/2" table.
	Selection     os2.Selection
	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	XHeight       funit.Int16 // only written for table version 2 and later
	CapHeight     funit.Int16 // only written for table version 2 and later
	WinAscent     uint16
	WinDescent    uint16
	AvgCharWidth  funit.Int16
}

// SeagullFlagsMetadata contains the names and metrics of the
// Seagull Flags icon font.
var SeagullFlagsMetadata = &MetadataConfig{
	UnitsPerEm:     2048,
	PostScriptName: "SeagullFlags",

	Ascent:          1491,
	Descent:         -431,
	LineGap:         269,
	XMaxExtent:      2812,
	AdvanceWidthMax: 2812,

	Selection:     os2.SelectionRegular,
	TypoAscender:  1491,
	TypoDescender: -431,
	TypoLineGap:   269,
	XHeight:       1024,
	CapHeight:     1434,
	WinAscent:     2210,
	WinDescent:    514,
	AvgCharWidth:  2812,
}

// Validate checks the configuration for consistency.
func (cfg *MetadataConfig) Validate() error {
	if cfg.UnitsPerEm < 16 || cfg.UnitsPerEm > 16384 {
		return fmt.Errorf("invalid unitsPerEm %d", cfg.UnitsPerEm)
	}
	err := ValidatePostScriptName(cfg.PostScriptName)
	if err != nil {
		return err
	}
	if cfg.Descent > 0 || cfg.TypoDescender > 0 {
		return errors.New("descender values must not be positive")
	}
	return nil
}

// ValidatePostScriptName checks that s can be used as a PostScript font
// name: at most 63 printable ASCII characters, excluding
// the characters '[', ']', '(', ')', '{', '}', '<', '>', '/' and '%'.
func ValidatePostScriptName(s string) error {
	if s == "" {
		return errors.New("empty PostScript name")
	}
	if len(s) > 63 {
		return fmt.Errorf("PostScript name %q is longer than 63 characters", s)
	}
	for _, c := range []byte(s) {
		if c < 33 || c > 126 || strings.IndexByte("[](){}<>/%", c) >= 0 {
			return fmt.Errorf("invalid character %q in PostScript name %q", c, s)
		}
	}
	return nil
}
