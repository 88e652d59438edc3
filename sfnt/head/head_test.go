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

package head

import (
	"bytes"
	"testing"
	"time"

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
	data, err := h.ReadTableBytes(r, "head")
	if err != nil {
		t.Fatal(err)
	}

	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 2048 {
		t.Errorf("wrong unitsPerEm %d", info.UnitsPerEm)
	}

	if d := cmp.Diff(data, info.Encode()); d != "" {
		t.Errorf("round trip changed the table (-want +got):\n%s", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	info := &Table{}
	info.Version = 0x00010000
	info.MagicNumber = magic
	info.UnitsPerEm = 1000
	good := info.Encode()
	if _, err := Decode(good); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(good[:Length-1]); err == nil {
		t.Error("short table accepted")
	}

	bad := bytes.Clone(good)
	bad[12] = 0
	if _, err := Decode(bad); err == nil {
		t.Error("wrong magic number accepted")
	}

	bad = bytes.Clone(good)
	bad[0] = 2
	if _, err := Decode(bad); !parser.IsUnsupported(err) {
		t.Errorf("wrong error for version 2: %v", err)
	}
}

func TestExtraData(t *testing.T) {
	info := &Table{}
	info.Version = 0x00010000
	info.MagicNumber = magic
	data := append(info.Encode(), 1, 2, 3)

	info2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{1, 2, 3}, info2.Extra); d != "" {
		t.Errorf("wrong extra data (-want +got):\n%s", d)
	}
	if !bytes.Equal(info2.Encode(), data) {
		t.Error("round trip changed the table")
	}
}

func TestTimeEncoding(t *testing.T) {
	for _, z := range []int64{0, 1, 2, 10, 100, 1000, 10000, 100000, 1000000,
		10000000, 100000000, 1000000000} {
		for _, s := range []int64{-1, 1} {
			x := z * s
			if encodeTime(decodeTime(x)) != x {
				t.Errorf("encodeTime(%d) != %d", x, x)
			}
		}
	}
}

func TestEpoch(t *testing.T) {
	epoch := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	if zeroTime != epoch.Unix() {
		t.Errorf("zeroTime != %d", epoch.Unix())
	}
	if !decodeTime(0).IsZero() {
		t.Error("decodeTime(0) != zero")
	}

	info := &Table{}
	mod := time.Date(2023, time.May, 17, 12, 0, 0, 0, time.UTC)
	info.SetModifiedTime(mod)
	if got := info.ModifiedTime(); !got.Equal(mod) {
		t.Errorf("modification time %s != %s", got, mod)
	}
}
