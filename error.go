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

import "fmt"

// UnitsPerEmError is returned by [PatchMetadata] if the font does not use
// the expected design grid.  The font is not modified in this case.
type UnitsPerEmError struct {
	Got, Want uint16
}

func (err *UnitsPerEmError) Error() string {
	return fmt.Sprintf("unexpected unitsPerEm %d (expected %d)", err.Got, err.Want)
}
