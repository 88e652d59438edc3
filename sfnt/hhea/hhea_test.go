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

package hhea

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/parser"
)

func TestRoundTrip(t *testing.T) {
	info := &Table{Fields: Fields{
		Version:             0x00010000,
		Ascent:              1491,
		Descent:             -431,
		LineGap:             269,
		AdvanceWidthMax:     2812,
		MinLeftSideBearing:  -12,
		MinRightSideBearing: 7,
		XMaxExtent:          2812,
		CaretSlopeRise:      1,
		NumOfLongHorMetrics: 17,
	}}
	data := info.Encode()
	if len(data) != Length {
		t.Errorf("expected %d bytes, got %d", Length, len(data))
	}

	info2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, info2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestGoRegular(t *testing.T) {
	r := bytes.NewReader(goregular.TTF)
	h, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := h.ReadTableBytes(r, "hhea")
	if err != nil {
		t.Fatal(err)
	}
	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Ascent <= 0 || info.Descent >= 0 {
		t.Errorf("implausible ascent/descent %d/%d", info.Ascent, info.Descent)
	}
	if d := cmp.Diff(data, info.Encode()); d != "" {
		t.Errorf("round trip changed the table (-want +got):\n%s", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(make([]byte, Length-1)); err == nil {
		t.Error("short table accepted")
	}
	if _, err := Decode(make([]byte, Length)); !parser.IsUnsupported(err) {
		t.Errorf("version 0 table: unexpected error %v", err)
	}
}

func TestExtraData(t *testing.T) {
	info := &Table{Fields: Fields{Version: 0x00010000, NumOfLongHorMetrics: 1}}
	data := append(info.Encode(), 0, 0)

	info2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{0, 0}, info2.Extra); d != "" {
		t.Errorf("wrong extra data (-want +got):\n%s", d)
	}
	if !bytes.Equal(info2.Encode(), data) {
		t.Error("round trip changed the table")
	}
}
