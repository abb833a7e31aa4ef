/*
 * namelist_test.go, part of made.
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

package namelist

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const pwInput = `&CONTROL
   calculation = 'scf'
   prefix = "silicon"
   outdir = './tmp/'   ! slashes inside quotes do not end the namelist
   tprnfor = .TRUE.
   tstress = false
/
&system
   ibrav = 2, celldm(1) = 10.2, nat = 2, ntyp = 1
   ecutwfc = 18.0
   starting_magnetization(2) = 0.5
   starting_magnetization(1) = -0.25
/
&electrons
   conv_thr = 1.0d-8
   mixing_beta = .7
/
ATOMIC_SPECIES
 Si  28.086  Si.pz-vbc.UPF
ATOMIC_POSITIONS alat
 Si 0.00 0.00 0.00
 Si 0.25 0.25 0.25
K_POINTS automatic
 4 4 4 0 0 0
`

func TestParseFortranFile(Te *testing.T) {
	text := "&control x = 1.0 y = 'abc' flag = .true. celldm(1) = 2.0 celldm(2) = 4.0 /\nK_POINTS automatic\n 4 4 4 0 0 0\n"
	T, err := ParseFortranFile(text)
	if err != nil {
		Te.Fatal(err)
	}
	exp := KeyValues{
		"x":      NumberValue(1.0),
		"y":      TextValue("abc"),
		"flag":   FlagValue(true),
		"celldm": SequenceValue(2.0, 4.0),
	}
	if diff := cmp.Diff(exp, T.Namelists["control"]); diff != "" {
		Te.Errorf("unexpected control namelist (-want +got):\n%s", diff)
	}
	if T.Cards != "K_POINTS automatic\n 4 4 4 0 0 0\n" {
		Te.Errorf("unexpected cards %q", T.Cards)
	}
}

func TestPWInput(Te *testing.T) {
	T, err := ParseFortranFile(pwInput)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"control", "system", "electrons"}, T.Order); diff != "" {
		Te.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	exp := map[string]KeyValues{
		"control": {
			"calculation": TextValue("scf"),
			"prefix":      TextValue("silicon"),
			"outdir":      TextValue("./tmp/"),
			"tprnfor":     FlagValue(true),
			"tstress":     FlagValue(false),
		},
		"system": {
			"ibrav":                  NumberValue(2),
			"celldm":                 SequenceValue(10.2),
			"nat":                    NumberValue(2),
			"ntyp":                   NumberValue(1),
			"ecutwfc":                NumberValue(18),
			"starting_magnetization": SequenceValue(0.5, -0.25), //arrival order, not index order
		},
		"electrons": {
			"conv_thr":    NumberValue(1e-8),
			"mixing_beta": NumberValue(0.7),
		},
	}
	if diff := cmp.Diff(exp, T.Namelists); diff != "" {
		Te.Errorf("unexpected namelists (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(T.Cards, "ATOMIC_SPECIES\n") || !strings.HasSuffix(T.Cards, " 4 4 4 0 0 0\n") {
		Te.Errorf("cards not kept verbatim: %q", T.Cards)
	}
	if v, ok := T.Get("CONTROL", "Calculation"); !ok || v.String() != "'scf'" {
		Te.Errorf("Get returned %v %v", v, ok)
	}
	if _, ok := T.Get("ions", "x"); ok {
		Te.Error("Get found a key in a missing namelist")
	}
}

func TestEmptyAndInline(Te *testing.T) {
	T, err := ParseFortranFile("! leading comment\n\n&ions /\n  &cell cell_dofree = 'all' / &control nstep=3/\nCELL_PARAMETERS\n")
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ions", "cell", "control"}, T.Order); diff != "" {
		Te.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	if kv, ok := T.Namelists["ions"]; !ok || len(kv) != 0 {
		Te.Errorf("ions should be present and empty, got %v", kv)
	}
	if v, _ := T.Get("control", "nstep"); !v.Equal(NumberValue(3)) {
		Te.Errorf("nstep is %v", v)
	}
	if T.Cards != "CELL_PARAMETERS\n" {
		Te.Errorf("cards %q", T.Cards)
	}
}

func TestNamelistsAmongText(Te *testing.T) {
	cases := []struct {
		text  string
		order []string
		cards string
	}{
		{"title line\n&control x = 1.0 /\nK_POINTS gamma\n", []string{"control"}, "K_POINTS gamma\n"},
		{"&control x = 1.0 /\nK_POINTS gamma\n&system nat = 2 /\n", []string{"control", "system"}, ""},
		{"&control x = 1.0 /\nK_POINTS gamma\n&system nat = 2 / ATOMIC_SPECIES\n", []string{"control", "system"}, " ATOMIC_SPECIES\n"},
		{"a & b\n! &ions in a comment\n&control x = 1.0 /\n", []string{"control"}, ""},
		{"K_POINTS gamma\n", nil, "K_POINTS gamma\n"},
	}
	for _, v := range cases {
		T, err := ParseFortranFile(v.text)
		if err != nil {
			Te.Errorf("%q: %v", v.text, err)
			continue
		}
		if diff := cmp.Diff(v.order, T.Order); diff != "" {
			Te.Errorf("%q: unexpected order (-want +got):\n%s", v.text, diff)
		}
		if len(T.Namelists) != len(v.order) {
			Te.Errorf("%q: got %d namelists, expected %d", v.text, len(T.Namelists), len(v.order))
		}
		if T.Cards != v.cards {
			Te.Errorf("%q: cards %q, expected %q", v.text, T.Cards, v.cards)
		}
	}
	T, err := ParseFortranFile("&control x = 1.0 /\nK_POINTS gamma\n&system nat = 2 /\n")
	if err != nil {
		Te.Fatal(err)
	}
	if v, ok := T.Get("system", "nat"); !ok || !v.Equal(NumberValue(2)) {
		Te.Errorf("nat is %v, %t", v, ok)
	}
}

func TestDuplicateNamelists(Te *testing.T) {
	text := `&control a = 1, b = 'first', v(1) = 1.0, v(2) = 2.0 /
&system nat = 1 /
&Control b = 'second', c = .false., v(1) = 5.0 /
`
	T, err := ParseFortranFile(text)
	if err != nil {
		Te.Fatal(err)
	}
	exp := KeyValues{
		"a": NumberValue(1),
		"b": TextValue("second"),
		"c": FlagValue(false),
		"v": SequenceValue(5.0),
	}
	if diff := cmp.Diff(exp, T.Namelists["control"]); diff != "" {
		Te.Errorf("duplicate namelists not merged as expected (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"control", "system"}, T.Order); diff != "" {
		Te.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestCardsPolicy(Te *testing.T) {
	for _, text := range []string{"&control a = 1 /", "&control a = 1 /\n", "&control a = 1 /  ! done\n \n\t\n"} {
		T, err := ParseFortranFile(text)
		if err != nil {
			Te.Errorf("%q: %v", text, err)
			continue
		}
		if T.Cards != "" {
			Te.Errorf("%q: expected empty cards, got %q", text, T.Cards)
		}
		P := NewParser()
		P.RequireCards = true
		_, err = P.Parse(text)
		if !errors.Is(err, ErrCardsNotFound) {
			Te.Errorf("%q: expected a cards error, got %v", text, err)
		}
	}
	P := &Parser{RequireCards: true}
	T, err := P.Parse("&control a = 1 /\nK_POINTS gamma\n")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Cards != "K_POINTS gamma\n" {
		Te.Errorf("cards %q", T.Cards)
	}
	T, err = ParseFortranFile("K_POINTS gamma\n")
	if err != nil || len(T.Namelists) != 0 || T.Cards != "K_POINTS gamma\n" {
		Te.Errorf("text without namelists: %v %v", T, err)
	}
}

func TestNamelistNotFound(Te *testing.T) {
	table := []struct {
		text string
		name string
		line int
	}{
		{"&control x = 1.0\n", "control", 1},
		{"&control x = 1 /\n\n&system nat = 2\nK_POINTS gamma\n", "system", 3},
		{"&control outdir = './tmp/\n", "control", 1},
		{"&control ! a comment / is not a terminator\n x = 1\n", "control", 1},
		{"& control x = 1 /", "", 1},
	}
	for _, v := range table {
		_, err := ParseFortranFile(v.text)
		if !errors.Is(err, ErrNamelistNotFound) {
			Te.Errorf("%q: expected a namelist not found error, got %v", v.text, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) || e.Namelist() != v.name || e.Line() != v.line {
			Te.Errorf("%q: got %v, expected &%s at line %d", v.text, err, v.name, v.line)
		}
	}
}

func TestUnparseableValue(Te *testing.T) {
	table := []struct {
		text string
		key  string
		line int
	}{
		{"&control\n calculation = scf\n/", "calculation", 2},
		{"&control x = 1, 2, 3 /", "", 1},
		{"&system atom(1) = 'Fe' /", "atom", 1},
		{"&system\n\n flag = .t. /", "flag", 3},
		{"&system nat /", "nat", 1},
		{"&system nat = /", "nat", 1},
		{"&system nat = 1e /", "nat", 1},
		{"&system name = 'abc'def /", "def", 1},
		{"&system v(1 = 2 /", "v", 1},
	}
	for _, v := range table {
		T, err := ParseFortranFile(v.text)
		if !errors.Is(err, ErrUnparseableValue) {
			Te.Errorf("%q: expected an unparseable value error, got %v (%v)", v.text, err, T)
			continue
		}
		var e *Error
		if !errors.As(err, &e) || e.Key() != v.key || e.Line() != v.line {
			Te.Errorf("%q: got %v, expected key %q at line %d", v.text, err, v.key, v.line)
		}
	}
}

func TestCustomGrammar(Te *testing.T) {
	bare := Rule{"bare word", func(a Assignment) (Value, bool) {
		if a.Indexed {
			return Value{}, false
		}
		return TextValue(a.Raw), true
	}}
	P := &Parser{Rules: []Rule{QuotedTextRule, FlagRule, NumberRule, bare}}
	T, err := P.Parse("&control calculation = scf, nstep = 10, lflag = .false. /")
	if err != nil {
		Te.Fatal(err)
	}
	exp := KeyValues{
		"calculation": TextValue("scf"),
		"nstep":       NumberValue(10),
		"lflag":       FlagValue(false),
	}
	if diff := cmp.Diff(exp, T.Namelists["control"]); diff != "" {
		Te.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	//Without IndexedNumberRule array keys are not understood.
	if _, err := P.Parse("&system celldm(1) = 1.0 /"); !errors.Is(err, ErrUnparseableValue) {
		Te.Errorf("expected an unparseable value error, got %v", err)
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := ParseFortranFile("&control x = 1.0\n")
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("error of type %T", err)
	}
	deco := e.Decorate("")
	if len(deco) != 2 || deco[0] != "Parse" || deco[1] != "ParseFortranFile" {
		Te.Errorf("unexpected decoration %v", deco)
	}
	if !strings.Contains(e.Error(), "&control") {
		Te.Errorf("message %q does not name the namelist", e.Error())
	}
}
