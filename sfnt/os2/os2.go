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

// Package os2 reads and writes the "OS/2" table of sfnt fonts.
//
// The table has grown over time.  Each version appends fields to the
// previous one; this package represents the groups of fields as separate
// structs, so that the fields missing from older table versions are
// visible as nil pointers.  Decoding and encoding is lossless.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
package os2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/parser"
)

// Table holds the fields of an "OS/2" table.
type Table struct {
	Base

	// Metrics is nil for the short version 0 tables found in some
	// old Apple fonts.
	Metrics *Metrics

	// CodePages is present from table version 1 onwards.
	CodePages *CodePages

	// Heights is present from table version 2 onwards.
	Heights *Heights

	// OpticalSize is present from table version 5 onwards.
	OpticalSize *OpticalSize

	// Extra holds trailing data not described by the table version.
	Extra []byte
}

// Base contains the fields which are present in all versions of the table.
type Base struct {
	Version            uint16
	AvgCharWidth       funit.Int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16 // embedding permissions
	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
	FamilyClass        int16    // https://docs.microsoft.com/en-us/typography/opentype/spec/ibmfc
	Panose             [10]byte // https://monotype.github.io/panose/
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          Selection
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

// Metrics contains the vertical metrics added by Microsoft to version 0
// of the table.
type Metrics struct {
	TypoAscender  funit.Int16
	TypoDescender funit.Int16 // negative
	TypoLineGap   funit.Int16
	WinAscent     uint16
	WinDescent    uint16 // positive
}

// CodePages contains the code page ranges (version 1 and later).
type CodePages struct {
	Range [2]uint32
}

// Heights contains the fields added in version 2 of the table.
type Heights struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

// OpticalSize contains the fields added in version 5 of the table.
// The values are in TWIPs, i.e. 1/20 of a point.
type OpticalSize struct {
	LowerPointSize uint16
	UpperPointSize uint16
}

const (
	baseLength        = 68
	metricsLength     = 10
	codePagesLength   = 8
	heightsLength     = 10
	opticalSizeLength = 4
)

// Decode decodes the binary representation of an "OS/2" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < baseLength {
		return nil, errTooShort
	}
	t := &Table{}
	r := bytes.NewReader(data)
	_ = binary.Read(r, binary.BigEndian, &t.Base)
	if t.Version > 5 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/os2",
			Feature:   fmt.Sprintf("table version %d", t.Version),
		}
	}

	if t.Version > 0 || r.Len() >= metricsLength {
		if r.Len() < metricsLength {
			return nil, errTooShort
		}
		t.Metrics = &Metrics{}
		_ = binary.Read(r, binary.BigEndian, t.Metrics)
	}
	if t.Version >= 1 {
		if r.Len() < codePagesLength {
			return nil, errTooShort
		}
		t.CodePages = &CodePages{}
		_ = binary.Read(r, binary.BigEndian, t.CodePages)
	}
	if t.Version >= 2 {
		if r.Len() < heightsLength {
			return nil, errTooShort
		}
		t.Heights = &Heights{}
		_ = binary.Read(r, binary.BigEndian, t.Heights)
	}
	if t.Version >= 5 {
		if r.Len() < opticalSizeLength {
			return nil, errTooShort
		}
		t.OpticalSize = &OpticalSize{}
		_ = binary.Read(r, binary.BigEndian, t.OpticalSize)
	}

	if r.Len() > 0 {
		t.Extra = data[len(data)-r.Len():]
	}
	return t, nil
}

// Encode returns the binary representation of the "OS/2" table.
// Field groups which are nil are omitted.
func (t *Table) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, baseLength+metricsLength+
		codePagesLength+heightsLength+opticalSizeLength+len(t.Extra)))
	_ = binary.Write(buf, binary.BigEndian, &t.Base)
	if t.Metrics != nil {
		_ = binary.Write(buf, binary.BigEndian, t.Metrics)
	}
	if t.CodePages != nil {
		_ = binary.Write(buf, binary.BigEndian, t.CodePages)
	}
	if t.Heights != nil {
		_ = binary.Write(buf, binary.BigEndian, t.Heights)
	}
	if t.OpticalSize != nil {
		_ = binary.Write(buf, binary.BigEndian, t.OpticalSize)
	}
	buf.Write(t.Extra)
	return buf.Bytes()
}

var errTooShort = &parser.InvalidFontError{
	SubSystem: "sfnt/os2",
	Reason:    "table too short",
}
