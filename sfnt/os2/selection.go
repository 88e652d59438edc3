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

package os2

import (
	"fmt"
	"strings"
)

// Selection holds the fsSelection bits of the "OS/2" table.
type Selection uint16

// These are the defined bits of the fsSelection field.
const (
	SelectionItalic         Selection = 1 << 0
	SelectionUnderscore     Selection = 1 << 1
	SelectionNegative       Selection = 1 << 2
	SelectionOutlined       Selection = 1 << 3
	SelectionStrikeout      Selection = 1 << 4
	SelectionBold           Selection = 1 << 5
	SelectionRegular        Selection = 1 << 6
	SelectionUseTypoMetrics Selection = 1 << 7 // version 4 and later
	SelectionWWS            Selection = 1 << 8 // version 4 and later
	SelectionOblique        Selection = 1 << 9 // version 4 and later
)

var selectionNames = []string{
	"ITALIC",
	"UNDERSCORE",
	"NEGATIVE",
	"OUTLINED",
	"STRIKEOUT",
	"BOLD",
	"REGULAR",
	"USE_TYPO_METRICS",
	"WWS",
	"OBLIQUE",
}

func (sel Selection) String() string {
	if sel == 0 {
		return "0"
	}
	var parts []string
	for i, name := range selectionNames {
		if sel&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if rest := sel &^ (1<<len(selectionNames) - 1); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%04X", uint16(rest)))
	}
	return strings.Join(parts, "|")
}
