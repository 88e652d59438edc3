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

package name

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/sfnt/parser"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// asciiOnly is used for byte encodings which are not available in
// golang.org/x/text.  All of them agree with ASCII on the range 0x00-0x7F,
// so only ASCII text is converted.
type asciiOnly struct {
	encoding.Encoding
}

var ascii = asciiOnly{charmap.ISO8859_1}

// textEncoding returns the character encoding used for the record value.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#platform-ids
func (rec *Record) textEncoding() (encoding.Encoding, error) {
	switch rec.PlatformID {
	case PlatformUnicode:
		return utf16BE, nil
	case PlatformMacintosh:
		switch rec.EncodingID {
		case 0: // Roman
			return charmap.Macintosh, nil
		case 1: // Japanese
			return japanese.ShiftJIS, nil
		case 2: // Chinese (Traditional)
			return traditionalchinese.Big5, nil
		case 3: // Korean
			return korean.EUCKR, nil
		case 7: // Russian
			return charmap.MacintoshCyrillic, nil
		case 25: // Chinese (Simplified)
			return simplifiedchinese.GBK, nil
		}
		if rec.EncodingID <= 32 {
			return ascii, nil
		}
	case PlatformISO:
		switch rec.EncodingID {
		case 0: // 7-bit ASCII
			return ascii, nil
		case 1: // ISO 10646
			return utf16BE, nil
		case 2: // ISO 8859-1
			return charmap.ISO8859_1, nil
		}
	case PlatformWindows:
		switch rec.EncodingID {
		case 0, 1, 10: // Symbol, Unicode BMP, Unicode full repertoire
			return utf16BE, nil
		case 2:
			return japanese.ShiftJIS, nil
		case 3: // PRC
			return simplifiedchinese.GBK, nil
		case 4:
			return traditionalchinese.Big5, nil
		case 5: // Wansung
			return korean.EUCKR, nil
		case 6: // Johab
			return ascii, nil
		}
	}
	return nil, &parser.NotSupportedError{
		SubSystem: "sfnt/name",
		Feature: fmt.Sprintf("platform %d encoding %d",
			rec.PlatformID, rec.EncodingID),
	}
}

func checkASCII(enc encoding.Encoding, b []byte, rec *Record) error {
	if _, ok := enc.(asciiOnly); !ok {
		return nil
	}
	for _, c := range b {
		if c >= 0x80 {
			return &parser.NotSupportedError{
				SubSystem: "sfnt/name",
				Feature: fmt.Sprintf("non-ASCII text for platform %d encoding %d",
					rec.PlatformID, rec.EncodingID),
			}
		}
	}
	return nil
}

// String decodes the value of the record.
func (rec *Record) String() (string, error) {
	enc, err := rec.textEncoding()
	if err != nil {
		return "", err
	}
	err = checkASCII(enc, rec.Value, rec)
	if err != nil {
		return "", err
	}
	b, err := enc.NewDecoder().Bytes(rec.Value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetString replaces the value of the record with the encoded form of s.
// The string is converted to Unicode normalization form C first.
func (rec *Record) SetString(s string) error {
	enc, err := rec.textEncoding()
	if err != nil {
		return err
	}
	text := []byte(norm.NFC.String(s))
	err = checkASCII(enc, text, rec)
	if err != nil {
		return err
	}
	b, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return fmt.Errorf("sfnt/name: cannot encode %q for platform %d: %w",
			s, rec.PlatformID, err)
	}
	rec.Value = b
	return nil
}

// Set replaces the value of every record with the given name ID.
// The return value is the number of records changed.
//
// If one of the records cannot be encoded, an error is returned and
// the table is left unchanged.
func (t *Table) Set(id ID, value string) (int, error) {
	type update struct {
		rec *Record
		val []byte
	}
	var updates []update
	for _, rec := range t.Records {
		if rec.NameID != id {
			continue
		}
		tmp := *rec
		err := tmp.SetString(value)
		if err != nil {
			return 0, err
		}
		updates = append(updates, update{rec, tmp.Value})
	}
	for _, u := range updates {
		u.rec.Value = u.val
	}
	return len(updates), nil
}

// Get returns the value of the given name ID.  Windows English records are
// preferred, followed by other Windows, Unicode and Macintosh records.
func (t *Table) Get(id ID) (string, bool) {
	var best *Record
	bestScore := -1
	for _, rec := range t.Records {
		if rec.NameID != id {
			continue
		}
		if _, err := rec.textEncoding(); err != nil {
			continue
		}
		score := 0
		switch {
		case rec.PlatformID == PlatformWindows && rec.LanguageID == 0x0409:
			score = 3
		case rec.PlatformID == PlatformWindows:
			score = 2
		case rec.PlatformID == PlatformUnicode:
			score = 1
		}
		if score > bestScore {
			best = rec
			bestScore = score
		}
	}
	if best == nil {
		return "", false
	}
	s, err := best.String()
	if err != nil {
		return "", false
	}
	return s, true
}
