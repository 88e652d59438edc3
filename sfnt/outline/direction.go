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

package outline

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyf"
)

// CorrectDirection makes sure that outer contours run clockwise and that
// the direction alternates with every level of nesting, as required for
// TrueType outlines.  Contours which enclose no area are left alone.
// The first point of a reversed contour stays in place.
// The return value is the number of contours reversed.
func CorrectDirection(info *glyf.SimpleUnpacked) int {
	n := len(info.Contours)
	polys := make([][]vec.Vec2, n)
	areas := make([]float64, n)
	for i, c := range info.Contours {
		polys[i] = polygon(c)
		areas[i] = signedArea(polys[i])
	}

	reversed := 0
	for i, c := range info.Contours {
		if areas[i] == 0 {
			continue
		}

		depth := 0
		p := polys[i][0]
		for j := range polys {
			if j == i || math.Abs(areas[j]) <= math.Abs(areas[i]) {
				continue
			}
			if contains(polys[j], p) {
				depth++
			}
		}

		wantClockwise := depth%2 == 0
		isClockwise := areas[i] < 0
		if wantClockwise != isClockwise {
			info.Contours[i] = reverse(c)
			reversed++
		}
	}
	return reversed
}

// CorrectGlyph applies [CorrectDirection] to a simple glyph.  Since
// reversing a contour renumbers its points, the hinting instructions of
// the glyph are removed if any contour is reversed.  Composite glyphs are
// not changed.  The return value is the number of reversed contours.
func CorrectGlyph(g *glyf.Glyph) (int, error) {
	if g == nil {
		return 0, nil
	}
	d, ok := g.Data.(glyf.SimpleGlyph)
	if !ok {
		return 0, nil
	}
	info, err := d.Unpack()
	if err != nil {
		return 0, err
	}
	n := CorrectDirection(info)
	if n == 0 {
		return 0, nil
	}
	info.Instructions = nil
	g.Data = pack(info, hasOverlap(d))
	return n, nil
}

func reverse(c glyf.Contour) glyf.Contour {
	n := len(c)
	res := make(glyf.Contour, n)
	if n == 0 {
		return res
	}
	res[0] = c[0]
	for i := 1; i < n; i++ {
		res[i] = c[n-i]
	}
	return res
}

func polygon(c glyf.Contour) []vec.Vec2 {
	res := make([]vec.Vec2, len(c))
	for i, p := range c {
		res[i] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}
	return res
}

// signedArea is positive for counter-clockwise polygons
// in a coordinate system where y points up.
func signedArea(poly []vec.Vec2) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// contains uses the even-odd rule.
func contains(poly []vec.Vec2, p vec.Vec2) bool {
	inside := false
	n := len(poly)
	for i := range poly {
		a := poly[i]
		b := poly[(i+n-1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			d := b.Sub(a)
			x := a.X + d.X*(p.Y-a.Y)/d.Y
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
