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

// Package name reads and writes the "name" table of sfnt fonts.
//
// The table is kept as a list of records, one per combination of platform,
// encoding, language and name ID, so that a font can be patched without
// losing entries this package does not understand.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"fmt"
	"sort"

	"seehuhn.de/go/sfnt/parser"
)

// ID identifies the meaning of a name record.
type ID uint16

// These are the predefined name IDs.
const (
	Copyright         ID = 0
	Family            ID = 1
	Subfamily         ID = 2
	Identifier        ID = 3
	FullName          ID = 4
	Version           ID = 5
	PostScriptName    ID = 6
	Trademark         ID = 7
	Manufacturer      ID = 8
	Designer          ID = 9
	Description       ID = 10
	VendorURL         ID = 11
	DesignerURL       ID = 12
	License           ID = 13
	LicenseURL        ID = 14
	TypographicFamily ID = 16
	TypographicSubfam ID = 17
)

// Platform IDs.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformISO       = 2 // deprecated
	PlatformWindows   = 3
)

// Record is a single entry of the "name" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      []byte // encoded according to platform and encoding
}

// Table holds the contents of a "name" table.
type Table struct {
	Version uint16
	Records []*Record

	// LangTags holds the encoded language tag strings of a version 1
	// table.  Language IDs 0x8000 and above refer to this list.
	LangTags [][]byte
}

// Decode decodes the binary representation of a "name" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformed
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/name",
			Feature:   fmt.Sprintf("table version %d", version),
		}
	}
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformed
	}
	numLang := 0
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformed
		}
		numLang = int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		endOfHeader += 2 + 4*numLang
		if endOfHeader > len(data) {
			return nil, errMalformed
		}
	}
	if storageOffset > len(data) {
		return nil, errMalformed
	}
	storage := data[storageOffset:]

	getString := func(length, offset int) ([]byte, error) {
		if offset+length > len(storage) {
			return nil, errMalformed
		}
		// copy, so that the result does not alias the input data
		return append([]byte(nil), storage[offset:offset+length]...), nil
	}

	t := &Table{
		Version: version,
		Records: make([]*Record, 0, numRec),
	}
	for i := 0; i < numRec; i++ {
		pos := recBase + 12*i
		rec := &Record{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     ID(data[pos+6])<<8 | ID(data[pos+7]),
		}
		length := int(data[pos+8])<<8 | int(data[pos+9])
		offset := int(data[pos+10])<<8 | int(data[pos+11])
		val, err := getString(length, offset)
		if err != nil {
			return nil, err
		}
		rec.Value = val
		t.Records = append(t.Records, rec)
	}

	langBase := recBase + 12*numRec + 2
	for i := 0; i < numLang; i++ {
		pos := langBase + 4*i
		length := int(data[pos])<<8 | int(data[pos+1])
		offset := int(data[pos+2])<<8 | int(data[pos+3])
		val, err := getString(length, offset)
		if err != nil {
			return nil, err
		}
		t.LangTags = append(t.LangTags, val)
	}

	return t, nil
}

// Encode returns the binary representation of the "name" table.
// Records are written in the sort order required by the OpenType format.
// Identical strings are stored only once.
func (t *Table) Encode() ([]byte, error) {
	records := make([]*Record, len(t.Records))
	copy(records, t.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].less(records[j])
	})

	numRec := len(records)
	numLang := 0
	startOfRecords := 6
	endOfHeader := startOfRecords + 12*numRec
	if t.Version > 0 {
		numLang = len(t.LangTags)
		endOfHeader += 2 + 4*numLang
	}
	if endOfHeader > 0xFFFF {
		return nil, errTooLarge
	}

	b := newStorageBuilder()
	res := make([]byte, endOfHeader)
	res[0] = byte(t.Version >> 8)
	res[1] = byte(t.Version)
	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(endOfHeader >> 8)
	res[5] = byte(endOfHeader)
	for i, rec := range records {
		offset, length, err := b.Add(rec.Value)
		if err != nil {
			return nil, err
		}
		base := startOfRecords + 12*i
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(length >> 8)
		res[base+9] = byte(length)
		res[base+10] = byte(offset >> 8)
		res[base+11] = byte(offset)
	}
	if t.Version > 0 {
		base := startOfRecords + 12*numRec
		res[base] = byte(numLang >> 8)
		res[base+1] = byte(numLang)
		for i, tag := range t.LangTags {
			offset, length, err := b.Add(tag)
			if err != nil {
				return nil, err
			}
			pos := base + 2 + 4*i
			res[pos] = byte(length >> 8)
			res[pos+1] = byte(length)
			res[pos+2] = byte(offset >> 8)
			res[pos+3] = byte(offset)
		}
	}

	return append(res, b.data...), nil
}

func (rec *Record) less(other *Record) bool {
	if rec.PlatformID != other.PlatformID {
		return rec.PlatformID < other.PlatformID
	}
	if rec.EncodingID != other.EncodingID {
		return rec.EncodingID < other.EncodingID
	}
	if rec.LanguageID != other.LanguageID {
		return rec.LanguageID < other.LanguageID
	}
	return rec.NameID < other.NameID
}

type storageBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newStorageBuilder() *storageBuilder {
	return &storageBuilder{
		idx: make(map[string]uint16),
	}
}

func (sb *storageBuilder) Add(b []byte) (offs, length uint16, err error) {
	if len(b) > 0xFFFF {
		return 0, 0, errTooLarge
	}
	key := string(b)
	if idx, ok := sb.idx[key]; ok {
		return idx, uint16(len(b)), nil
	}
	if len(sb.data) > 0xFFFF {
		return 0, 0, errTooLarge
	}
	idx := uint16(len(sb.data))
	sb.idx[key] = idx
	sb.data = append(sb.data, b...)
	return idx, uint16(len(b)), nil
}

var (
	errMalformed = &parser.InvalidFontError{
		SubSystem: "sfnt/name",
		Reason:    "malformed name table",
	}
	errTooLarge = &parser.InvalidFontError{
		SubSystem: "sfnt/name",
		Reason:    "name table too large",
	}
)
