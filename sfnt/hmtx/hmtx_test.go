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

package hmtx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
)

func TestEncodeCompact(t *testing.T) {
	mm := []Metric{
		{Width: 100, LSB: 10},
		{Width: 200, LSB: 20},
		{Width: 300, LSB: -30},
		{Width: 300, LSB: 40},
		{Width: 300, LSB: 50},
	}
	data, numLong := Encode(mm, 0)
	if numLong != 3 {
		t.Errorf("expected 3 long metrics, got %d", numLong)
	}
	if len(data) != 4*3+2*2 {
		t.Errorf("wrong table length %d", len(data))
	}

	mm2, err := Decode(data, len(mm), int(numLong))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(mm, mm2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestEncodeMinLong(t *testing.T) {
	mm := []Metric{
		{Width: 500, LSB: 1},
		{Width: 500, LSB: 2},
		{Width: 500, LSB: 3},
	}
	data, numLong := Encode(mm, 2)
	if numLong != 2 {
		t.Errorf("expected 2 long metrics, got %d", numLong)
	}
	want := []byte{1, 244, 0, 1, 1, 244, 0, 2, 0, 3}
	if d := cmp.Diff(want, data); d != "" {
		t.Errorf("wrong encoding (-want +got):\n%s", d)
	}

	_, numLong = Encode(mm, 10)
	if numLong != 3 {
		t.Errorf("numLong must not exceed the number of glyphs, got %d", numLong)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(make([]byte, 10), 3, 0); err == nil {
		t.Error("numLong=0 accepted")
	}
	if _, err := Decode(make([]byte, 10), 3, 3); err == nil {
		t.Error("short table accepted")
	}
}

func TestSummarize(t *testing.T) {
	mm := []Metric{
		{Width: 1000, LSB: 0},
		{Width: 2812, LSB: 400},
		{Width: 600, LSB: -20},
	}
	bbox := []funit.Rect16{
		{}, // empty glyph
		{LLx: 400, LLy: 0, URx: 2400, URy: 1400},
		{LLx: -20, LLy: -10, URx: 610, URy: 700},
	}
	s := Summarize(mm, bbox)
	want := &Summary{
		AdvanceWidthMax:     2812,
		MinLeftSideBearing:  -20,
		MinRightSideBearing: -10,
		XMaxExtent:          2400,
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("wrong summary (-want +got):\n%s", d)
	}
}

func TestSummarizeLargeExtent(t *testing.T) {
	mm := []Metric{{Width: 2048, LSB: -30000}}
	bbox := []funit.Rect16{{LLx: -30000, LLy: 0, URx: 30000, URy: 100}}
	s := Summarize(mm, bbox)
	if s.XMaxExtent != 30000 {
		t.Errorf("wrong xMaxExtent %d", s.XMaxExtent)
	}
	if s.MinRightSideBearing != -27952 {
		t.Errorf("wrong minRightSideBearing %d", s.MinRightSideBearing)
	}

	mm = []Metric{{Width: 65535, LSB: 30000}}
	bbox = []funit.Rect16{{LLx: 30000, URx: 32000}}
	s = Summarize(mm, bbox)
	if s.XMaxExtent != 32000 || s.MinRightSideBearing != 32767 {
		t.Errorf("got extent %d, rsb %d", s.XMaxExtent, s.MinRightSideBearing)
	}
}
