/*
 * xyz_test.go, part of made.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package xyz

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/made"
)

const methane = `
C        0.000000     0.000000     0.000000
H        0.629118     0.629118     0.629118
H       -0.629118    -0.629118     0.629118
H       -0.629118     0.629118    -0.629118
H        0.629118    -0.629118    -0.629118
`

func TestToBasisConfig(Te *testing.T) {
	B, err := ToBasisConfig("Si 0 0 0 \n Si 0.25 0.25 0.25")
	if err != nil {
		Te.Fatal(err)
	}
	exp := []made.AtomRecord{
		{Element: "Si", Coords: [3]float64{0, 0, 0}},
		{Element: "Si", Coords: [3]float64{0.25, 0.25, 0.25}},
	}
	if diff := cmp.Diff(exp, B.Elements); diff != "" {
		Te.Errorf("unexpected atoms (-want +got):\n%s", diff)
	}
	if B.Units != made.Cartesian {
		Te.Errorf("units %q, expected cartesian", B.Units)
	}
	if B.Cell != nil || B.Constraints != nil {
		Te.Error("cell and constraints should not be set")
	}
}

func TestNumberFormats(Te *testing.T) {
	B, err := ToBasisConfig("\n\n  Fe\t+1.5   -2.0e-3  1E2  \r\n\n")
	if err != nil {
		Te.Fatal(err)
	}
	exp := [3]float64{1.5, -0.002, 100}
	if B.Len() != 1 || B.Elements[0].Coords != exp || B.Elements[0].Element != "Fe" {
		Te.Errorf("got %+v", B.Elements)
	}
	empty, err := ToBasisConfig("  \n\n")
	if err != nil || empty.Len() != 0 {
		Te.Errorf("blank text should give an empty basis, got %v, %v", empty, err)
	}
}

func TestMalformed(Te *testing.T) {
	table := []struct {
		text string
		line int
	}{
		{"Si 0 0 0\nSi 0.25 0.25", 2},
		{"Si 0 0 0 0", 1},
		{"\n\nSi 0 zero 0", 3},
		{"Si 0 0 NaN", 1},
		{"Si 0 0 Inf", 1},
		{"Si", 1},
	}
	for _, v := range table {
		_, err := ToBasisConfig(v.text)
		if err == nil {
			Te.Errorf("%q: expected an error", v.text)
			continue
		}
		if !errors.Is(err, ErrMalformedRecord) {
			Te.Errorf("%q: error %v does not wrap ErrMalformedRecord", v.text, err)
		}
		var e *Error
		if !errors.As(err, &e) || e.Line() != v.line {
			Te.Errorf("%q: error %v, expected line %d", v.text, err, v.line)
		}
	}
}

func TestAtomsCount(Te *testing.T) {
	if n := AtomsCount(methane); n != 5 {
		Te.Errorf("methane has %d atoms, expected 5", n)
	}
	if n := AtomsCount(""); n != 0 {
		Te.Errorf("empty text has %d atoms", n)
	}
	//malformed lines are counted, not rejected
	if n := AtomsCount("Si 0 0\nnonsense\n\n"); n != 2 {
		Te.Errorf("got %d, expected 2", n)
	}
	for _, text := range []string{methane, "Si 0 0 0 \n Si 0.25 0.25 0.25", "\n \n"} {
		B, err := ToBasisConfig(text)
		if err != nil {
			Te.Fatal(err)
		}
		if AtomsCount(text) != B.Len() {
			Te.Errorf("AtomsCount %d, ToBasisConfig %d atoms", AtomsCount(text), B.Len())
		}
	}
}

func TestReadWrite(Te *testing.T) {
	B, err := ToBasisConfig(methane)
	if err != nil {
		Te.Fatal(err)
	}
	text, err := Write(B, "methane\nsecond line")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(text, "\n")
	if lines[0] != "5" || lines[1] != "methane second line" {
		Te.Errorf("wrong header %q %q", lines[0], lines[1])
	}
	if lines[3] != "H       0.629118    0.629118    0.629118" {
		Te.Errorf("wrong atom line %q", lines[3])
	}
	comment, B2, err := Read(text)
	if err != nil {
		Te.Fatal(err)
	}
	if comment != "methane second line" {
		Te.Errorf("comment %q", comment)
	}
	if !B.SameAtoms(B2, 1e-9) {
		Te.Errorf("round trip changed the atoms: %v %v", B.Elements, B2.Elements)
	}
}

func TestReadErrors(Te *testing.T) {
	table := []string{
		"five\n\nC 0 0 0",
		"3\ncomment\nC 0 0 0\nH 1 0 0",
		"2\ncomment\nC 0 0 0\n\nH 1 0 0",
		"2\ncomment\nC 0 0 0\nH 1 0",
		"9223372036854775807\ncomment\nC 0 0 0\n",
		"1",
	}
	for _, v := range table {
		if _, _, err := Read(v); !errors.Is(err, ErrMalformedRecord) {
			Te.Errorf("%q: expected a malformed record error, got %v", v, err)
		}
	}
	_, _, err := Read("2\ncomment\nC 0 0 0\nH 1 0")
	var e *Error
	if errors.As(err, &e) && e.Line() != 4 {
		Te.Errorf("error reported at line %d, expected 4", e.Line())
	}
}

func TestWriteFractional(Te *testing.T) {
	B := &made.BasisConfig{
		Units:    made.Fractional,
		Elements: []made.AtomRecord{{Element: "Na", Coords: [3]float64{0.5, 0.5, 0.5}}},
	}
	if _, err := Write(B, ""); err == nil {
		Te.Error("a fractional basis without cell can't be written")
	}
	B.Cell = made.NewLattice([3]float64{4, 0, 0}, [3]float64{0, 4, 0}, [3]float64{0, 0, 4})
	text, err := Write(B, "")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(text, "Na      2.000000    2.000000    2.000000") {
		Te.Errorf("unexpected output %q", text)
	}
}
