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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/parser"
)

func readGoRegular(t *testing.T) []byte {
	t.Helper()
	r := bytes.NewReader(goregular.TTF)
	h, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := h.ReadTableBytes(r, "name")
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestGoRegular(t *testing.T) {
	info, err := Decode(readGoRegular(t))
	if err != nil {
		t.Fatal(err)
	}

	psName, ok := info.Get(PostScriptName)
	if !ok || psName == "" {
		t.Errorf("wrong PostScript name %q", psName)
	}

	data, err := info.Encode()
	if err != nil {
		t.Fatal(err)
	}
	info2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info.Records, info2.Records); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestSetPostScriptName(t *testing.T) {
	info, err := Decode(readGoRegular(t))
	if err != nil {
		t.Fatal(err)
	}
	before := make(map[recordKey]string)
	for _, rec := range info.Records {
		if rec.NameID != PostScriptName {
			before[keyOf(rec)] = string(rec.Value)
		}
	}

	n, err := info.Set(PostScriptName, "SeagullFlags")
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("no PostScript name records found")
	}

	count := 0
	for _, rec := range info.Records {
		if rec.NameID != PostScriptName {
			if val, ok := before[keyOf(rec)]; !ok || val != string(rec.Value) {
				t.Errorf("record %d/%d/%d/%d was modified",
					rec.PlatformID, rec.EncodingID, rec.LanguageID, rec.NameID)
			}
			continue
		}
		count++
		s, err := rec.String()
		if err != nil {
			t.Fatal(err)
		}
		if s != "SeagullFlags" {
			t.Errorf("platform %d: got %q", rec.PlatformID, s)
		}
	}
	if count != n {
		t.Errorf("Set reported %d records, found %d", n, count)
	}
}

type recordKey struct {
	PlatformID, EncodingID, LanguageID uint16
	NameID                             ID
}

func keyOf(rec *Record) recordKey {
	return recordKey{rec.PlatformID, rec.EncodingID, rec.LanguageID, rec.NameID}
}

func TestEncodings(t *testing.T) {
	info := &Table{
		Records: []*Record{
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: PostScriptName},
			{PlatformID: PlatformMacintosh, EncodingID: 0, LanguageID: 0, NameID: PostScriptName},
			{PlatformID: PlatformUnicode, EncodingID: 3, LanguageID: 0, NameID: PostScriptName},
		},
	}
	n, err := info.Set(PostScriptName, "Äb")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 records, got %d", n)
	}

	want := [][]byte{
		{0x00, 0xC4, 0x00, 'b'},
		{0x80, 'b'},
		{0x00, 0xC4, 0x00, 'b'},
	}
	for i, rec := range info.Records {
		if d := cmp.Diff(want[i], rec.Value); d != "" {
			t.Errorf("record %d (-want +got):\n%s", i, d)
		}
	}
}

func TestLegacyEncodings(t *testing.T) {
	type enc struct{ platform, encoding uint16 }
	byteEncodings := []enc{
		{PlatformMacintosh, 0},
		{PlatformMacintosh, 1},
		{PlatformMacintosh, 2},
		{PlatformMacintosh, 3},
		{PlatformMacintosh, 7},
		{PlatformMacintosh, 21},
		{PlatformMacintosh, 25},
		{PlatformISO, 0},
		{PlatformISO, 2},
		{PlatformWindows, 2},
		{PlatformWindows, 3},
		{PlatformWindows, 4},
		{PlatformWindows, 5},
		{PlatformWindows, 6},
	}
	for _, e := range byteEncodings {
		info := &Table{
			Records: []*Record{
				{PlatformID: e.platform, EncodingID: e.encoding, NameID: PostScriptName, Value: []byte("Old")},
			},
		}
		n, err := info.Set(PostScriptName, "SeagullFlags")
		if err != nil {
			t.Errorf("%d/%d: %v", e.platform, e.encoding, err)
			continue
		}
		if n != 1 {
			t.Errorf("%d/%d: %d records changed", e.platform, e.encoding, n)
		}
		if d := cmp.Diff([]byte("SeagullFlags"), info.Records[0].Value); d != "" {
			t.Errorf("%d/%d (-want +got):\n%s", e.platform, e.encoding, d)
		}
		if s, err := info.Records[0].String(); err != nil || s != "SeagullFlags" {
			t.Errorf("%d/%d: decoded %q, %v", e.platform, e.encoding, s, err)
		}
	}

	info := &Table{
		Records: []*Record{
			{PlatformID: PlatformISO, EncodingID: 1, NameID: PostScriptName},
		},
	}
	if _, err := info.Set(PostScriptName, "Ab"); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{0, 'A', 0, 'b'}, info.Records[0].Value); d != "" {
		t.Errorf("ISO 10646 (-want +got):\n%s", d)
	}
}

func TestNonASCII(t *testing.T) {
	rec := &Record{PlatformID: PlatformMacintosh, EncodingID: 1}
	if err := rec.SetString("カモメ"); err != nil {
		t.Fatal(err)
	}
	if s, err := rec.String(); err != nil || s != "カモメ" {
		t.Errorf("Shift JIS round trip: %q, %v", s, err)
	}

	rec = &Record{PlatformID: PlatformWindows, EncodingID: 6}
	if err := rec.SetString("Möwe"); !parser.IsUnsupported(err) {
		t.Errorf("Johab: unexpected error %v", err)
	}
	rec.Value = []byte{0x88, 0x61}
	if _, err := rec.String(); !parser.IsUnsupported(err) {
		t.Errorf("Johab: unexpected error %v", err)
	}
}

func TestSetUnsupported(t *testing.T) {
	info := &Table{
		Records: []*Record{
			{PlatformID: PlatformWindows, EncodingID: 1, NameID: PostScriptName, Value: []byte{0, 'A'}},
			{PlatformID: 4, EncodingID: 0, NameID: PostScriptName, Value: []byte{'A'}},
		},
	}
	_, err := info.Set(PostScriptName, "X")
	if !parser.IsUnsupported(err) {
		t.Errorf("unexpected error %v", err)
	}
	if !bytes.Equal(info.Records[0].Value, []byte{0, 'A'}) {
		t.Error("table was modified despite the error")
	}
}

func TestVersion1(t *testing.T) {
	info := &Table{
		Version: 1,
		Records: []*Record{
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x8000, NameID: Family},
		},
		LangTags: [][]byte{{0, 'd', 0, 'e'}},
	}
	if err := info.Records[0].SetString("Möwe"); err != nil {
		t.Fatal(err)
	}
	data, err := info.Encode()
	if err != nil {
		t.Fatal(err)
	}
	info2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, info2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
	if tag := info2.Language(info2.Records[0]); tag != language.German {
		t.Errorf("wrong language %s", tag)
	}
}

func TestLanguage(t *testing.T) {
	info := &Table{}
	rec := &Record{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x0409}
	if tag := info.Language(rec); tag != language.AmericanEnglish {
		t.Errorf("wrong language %s", tag)
	}
	rec = &Record{PlatformID: PlatformMacintosh, LanguageID: 0}
	if tag := info.Language(rec); tag != language.English {
		t.Errorf("wrong language %s", tag)
	}
	rec = &Record{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x8005}
	if tag := info.Language(rec); tag != language.Und {
		t.Errorf("wrong language %s", tag)
	}
}

func FuzzName(f *testing.F) {
	info := &Table{
		Records: []*Record{
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: Family, Value: []byte{0, 'G', 0, 'o'}},
		},
	}
	data, _ := info.Encode()
	f.Add(data)

	f.Fuzz(func(t *testing.T, data []byte) {
		info, err := Decode(data)
		if err != nil {
			return
		}
		data2, err := info.Encode()
		if err != nil {
			return
		}
		info2, err := Decode(data2)
		if err != nil {
			t.Fatal(err)
		}
		if len(info.Records) != len(info2.Records) {
			t.Fatalf("record count changed: %d != %d",
				len(info.Records), len(info2.Records))
		}
	})
}
