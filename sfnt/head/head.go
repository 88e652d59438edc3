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

// Package head reads and writes the "head" table of sfnt fonts.
//
// Decoding and encoding is lossless: a table which is decoded and encoded
// again without changes is byte-identical to the original.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/parser"
)

// Table holds the fields of a "head" table.
type Table struct {
	Fields

	// Extra holds any data following the fields listed above.
	Extra []byte
}

// Fields lists the fields of a version 1.0 "head" table.
type Fields struct {
	Version            uint32
	FontRevision       Version
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin funit.Int16
	YMin funit.Int16
	XMax funit.Int16
	YMax funit.Int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Length is the size of an encoded "head" table in bytes.
const Length = 54

const magic = 0x5F0F3CF5

// Decode decodes the binary representation of a "head" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < Length {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/head",
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
			SubSystem: "sfnt/head",
			Feature:   fmt.Sprintf("table version %08x", t.Version),
		}
	}
	if t.MagicNumber != magic {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    fmt.Sprintf("invalid magic number %08x", t.MagicNumber),
		}
	}
	return t, nil
}

// Encode returns the binary representation of the "head" table.
func (t *Table) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, Length+len(t.Extra)))
	_ = binary.Write(buf, binary.BigEndian, &t.Fields)
	buf.Write(t.Extra)
	return buf.Bytes()
}

// FontBBox returns the bounding box of all glyphs in the font.
func (t *Table) FontBBox() funit.Rect16 {
	return funit.Rect16{LLx: t.XMin, LLy: t.YMin, URx: t.XMax, URy: t.YMax}
}

// SetFontBBox sets the bounding box of all glyphs in the font.
func (t *Table) SetFontBBox(bbox funit.Rect16) {
	t.XMin = bbox.LLx
	t.YMin = bbox.LLy
	t.XMax = bbox.URx
	t.YMax = bbox.URy
}

// ModifiedTime returns the modification time of the font.
// The zero time is returned if the field is not set.
func (t *Table) ModifiedTime() time.Time {
	return decodeTime(t.Modified)
}

// SetModifiedTime sets the modification time of the font.
func (t *Table) SetModifiedTime(mod time.Time) {
	t.Modified = encodeTime(mod)
}

// Version represents the font revision in 16.16 fixed point format.
type Version uint32

func (v Version) String() string {
	return fmt.Sprintf("%.03f", float64(v)/65536)
}
