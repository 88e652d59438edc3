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

// Package fontpatch post-processes compiled TrueType fonts.
//
// Two operations are provided.  [WidenGlyphs] gives every glyph of a given
// advance width a new, larger width and moves the glyph outline so that the
// glyph stays centred.  [PatchMetadata] overwrites the PostScript name and
// a fixed set of vertical metrics in the "name", "hhea" and "OS/2" tables.
// The presets [SeagullFlagsWidths] and [SeagullFlagsMetadata] contain the
// values used for the Seagull Flags icon font.
//
// Fonts are patched in place, using [Edit]:
//
//	err := fontpatch.Edit("font.ttf", func(f *fontpatch.Font) error {
//	    _, err := fontpatch.WidenGlyphs(f, fontpatch.SeagullFlagsWidths)
//	    return err
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The file is only rewritten if the callback succeeds and at least one
// table was changed.  Tables which are not touched by an operation are
// written back unchanged.
package fontpatch
