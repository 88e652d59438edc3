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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/parser"
)

func TestGoRegular(t *testing.T) {
	r := bytes.NewReader(goregular.TTF)
	h, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := h.ReadTableBytes(r, "OS/2")
	if err != nil {
		t.Fatal(err)
	}

	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Metrics == nil {
		t.Fatal("missing vertical metrics")
	}
	if info.Version >= 2 && info.Heights == nil {
		t.Error("missing heights for version >= 2")
	}
	if d := cmp.Diff(data, info.Encode()); d != "" {
		t.Errorf("round trip changed the table (-want +got):\n%s", d)
	}
}

func TestVersions(t *testing.T) {
	for _, version := range []uint16{0, 1, 2, 3, 4, 5} {
		info := &Table{
			Base: Base{
				Version:      version,
				AvgCharWidth: 1000,
				WeightClass:  400,
				WidthClass:   5,
				VendID:       [4]byte{'P', 'f', 'E', 'd'},
				Selection:    SelectionRegular,
			},
			Metrics: &Metrics{
				TypoAscender:  1491,
				TypoDescender: -431,
				TypoLineGap:   269,
				WinAscent:     2210,
				WinDescent:    514,
			},
		}
		if version >= 1 {
			info.CodePages = &CodePages{Range: [2]uint32{1, 0}}
		}
		if version >= 2 {
			info.Heights = &Heights{XHeight: 1024, CapHeight: 1434}
		}
		if version >= 5 {
			info.OpticalSize = &OpticalSize{LowerPointSize: 0, UpperPointSize: 0xFFFE}
		}

		data := info.Encode()
		info2, err := Decode(data)
		if err != nil {
			t.Fatalf("version %d: %v", version, err)
		}
		if d := cmp.Diff(info, info2); d != "" {
			t.Errorf("version %d: round trip failed (-want +got):\n%s", version, d)
		}
	}
}

func TestShortTables(t *testing.T) {
	// Old Apple fonts use a 68 byte version 0 table.
	short := (&Table{Base: Base{Version: 0}}).Encode()
	info, err := Decode(short)
	if err != nil {
		t.Fatal(err)
	}
	if info.Metrics != nil {
		t.Error("unexpected vertical metrics")
	}
	if !bytes.Equal(info.Encode(), short) {
		t.Error("round trip changed the table")
	}

	v2 := (&Table{
		Base:      Base{Version: 2},
		Metrics:   &Metrics{},
		CodePages: &CodePages{},
		Heights:   &Heights{},
	}).Encode()
	if _, err := Decode(v2[:len(v2)-1]); err == nil {
		t.Error("truncated version 2 table accepted")
	}

	v6 := bytes.Clone(v2)
	v6[1] = 6
	if _, err := Decode(v6); !parser.IsUnsupported(err) {
		t.Errorf("version 6: unexpected error %v", err)
	}
}

func TestExtraData(t *testing.T) {
	data := (&Table{
		Base:    Base{Version: 0},
		Metrics: &Metrics{WinAscent: 7},
	}).Encode()
	data = append(data, 1, 2, 3)
	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{1, 2, 3}, info.Extra); d != "" {
		t.Errorf("wrong extra data (-want +got):\n%s", d)
	}
	if !bytes.Equal(info.Encode(), data) {
		t.Error("round trip changed the table")
	}
}

func TestSelectionString(t *testing.T) {
	cases := []struct {
		sel  Selection
		want string
	}{
		{0, "0"},
		{SelectionRegular, "REGULAR"},
		{0b000000_01000000, "REGULAR"},
		{SelectionBold | SelectionItalic, "ITALIC|BOLD"},
		{SelectionRegular | 0x8000, "REGULAR|0x8000"},
	}
	for _, test := range cases {
		if got := test.sel.String(); got != test.want {
			t.Errorf("%d: got %q, want %q", uint16(test.sel), got, test.want)
		}
	}
}
