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

// Package hhea reads and writes the "hhea" table of sfnt fonts.
// Data following the fields of a version 1.0 table is kept unchanged.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
package hhea

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/parser"
)

// Table holds the fields of a "hhea" table.
type Table struct {
	Fields

	// Extra holds any data following the fields listed above.
	Extra []byte
}

// Fields lists the fields of a version 1.0 "hhea" table.
type Fields struct {
	Version             uint32
	Ascent              funit.Int16
	Descent             funit.Int16 // negative for descenders below the baseline
	LineGap             funit.Int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16 // max(lsb + (xMax - xMin))
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	Reserved            [4]int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

// Length is the size of an encoded "hhea" table in bytes.
const Length = 36

// Decode decodes the binary representation of a "hhea" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < Length {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/hhea",
			Reason:    "table too short",
		}
	}
	t := &Table{}
	_ = binary.Read(bytes.NewReader(data), binary.BigEndian, &t.Fields)
	if len(data) > Length {
		t.Extra = bytes.Clone(data[Length:])
	}

	if t.Version>>16 != 1 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("table version %08x", t.Version),
		}
	}
	if t.MetricDataFormat != 0 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("metric data format %d", t.MetricDataFormat),
		}
	}
	return t, nil
}

// Encode returns the binary representation of the "hhea" table.
func (t *Table) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, Length+len(t.Extra)))
	_ = binary.Write(buf, binary.BigEndian, &t.Fields)
	buf.Write(t.Extra)
	return buf.Bytes()
}
