/*
 * read.go, part of made.
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

package poscar

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/made"
	"gonum.org/v1/gonum/floats"
)

// Read reads a POSCAR (or CONTCAR) file in the VASP 5 layout, which has a line with the
// element symbols after the lattice vectors. It returns the title line and the basis, with
// the cell set and, if the file uses selective dynamics, the constraints. The scaling factor
// is applied to the cell, and to the coordinates if they are Cartesian. A negative scaling
// factor is taken as the volume of the cell, as VASP does. Velocities and any other
// block after the coordinates are ignored.
func Read(text string) (string, *made.BasisConfig, error) {
	r := &reader{lines: strings.Split(text, "\n")}
	title, _ := r.next()
	title = strings.TrimRight(title, "\r")
	scale, err := r.floats(1)
	if err != nil {
		return "", nil, err
	}
	var vecs [3][3]float64
	for i := range vecs {
		v, err := r.floats(3)
		if err != nil {
			return "", nil, err
		}
		copy(vecs[i][:], v)
	}
	cell := made.NewLattice(vecs[0], vecs[1], vecs[2])
	factor := scale[0]
	if factor < 0 {
		vol := cell.Volume()
		if vol == 0 {
			return "", nil, r.errorf("can't scale a cell of zero volume")
		}
		factor = math.Cbrt(-factor / vol)
	}
	cell = cell.Scaled(factor)
	line, ok := r.next()
	if !ok {
		return "", nil, r.errorf("missing species line")
	}
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return "", nil, r.errorf("empty species line")
	}
	if _, err := strconv.Atoi(symbols[0]); err == nil {
		return "", nil, r.errorf("no species line (VASP 4 files are not supported)")
	}
	line, _ = r.next()
	fields := strings.Fields(line)
	if len(fields) != len(symbols) {
		return "", nil, r.errorf("%d atom counts for %d species", len(fields), len(symbols))
	}
	counts := make([]int, len(fields))
	natoms := 0
	for i, v := range fields {
		counts[i], err = strconv.Atoi(v)
		if err != nil || counts[i] < 0 {
			return "", nil, r.errorf("can't read atom count %q", v)
		}
		if counts[i] > len(r.lines) {
			return "", nil, r.errorf("%d atoms declared in a %d-line file", counts[i], len(r.lines))
		}
		natoms += counts[i]
	}
	line, _ = r.next()
	selective := false
	if first(line) == 's' {
		selective = true
		line, _ = r.next()
	}
	B := &made.BasisConfig{Units: made.Fractional, Cell: cell}
	switch first(line) {
	case 'c', 'k':
		B.Units = made.Cartesian
	case 'd':
	default:
		return "", nil, r.errorf("unknown coordinate mode %q", strings.TrimSpace(line))
	}
	B.Elements = make([]made.AtomRecord, 0, natoms)
	if selective {
		B.Constraints = make([]made.Constraint, 0, natoms)
	}
	for s, symbol := range symbols {
		for j := 0; j < counts[s]; j++ {
			at, con, err := r.atom(symbol, selective)
			if err != nil {
				return "", nil, err
			}
			if B.Units == made.Cartesian {
				floats.Scale(factor, at.Coords[:])
			}
			B.Elements = append(B.Elements, at)
			if selective {
				B.Constraints = append(B.Constraints, con)
			}
		}
	}
	return title, B, nil
}

// reader keeps track of the current line, for error messages.
type reader struct {
	lines []string
	n     int //number of lines read so far
}

func (r *reader) next() (string, bool) {
	if r.n >= len(r.lines) {
		r.n++
		return "", false
	}
	r.n++
	return r.lines[r.n-1], true
}

func (r *reader) errorf(format string, a ...interface{}) error {
	return &Error{fmt.Sprintf(format, a...), r.n, []string{"Read"}}
}

// floats reads the next line and returns its first n fields as numbers.
func (r *reader) floats(n int) ([]float64, error) {
	line, ok := r.next()
	if !ok {
		return nil, r.errorf("unexpected end of file")
	}
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, r.errorf("%d fields, expected %d", len(fields), n)
	}
	ret := make([]float64, n)
	for i := range ret {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, r.errorf("can't read number %q", fields[i])
		}
		ret[i] = f
	}
	return ret, nil
}

func (r *reader) atom(symbol string, selective bool) (made.AtomRecord, made.Constraint, error) {
	at := made.AtomRecord{Element: symbol}
	var con made.Constraint
	v, err := r.floats(3)
	if err != nil {
		return at, con, err
	}
	copy(at.Coords[:], v)
	if !selective {
		return at, con, nil
	}
	fields := strings.Fields(r.lines[r.n-1])
	if len(fields) < 6 {
		return at, con, r.errorf("missing selective dynamics flags")
	}
	for i, f := range fields[3:6] {
		switch strings.ToUpper(f) {
		case "T":
			con[i] = true
		case "F":
		default:
			return at, con, r.errorf("invalid selective dynamics flag %q", f)
		}
	}
	return at, con, nil
}

// first returns the first non-blank character of s, lowercased, or 0.
func first(s string) byte {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

//Errors

// Error is the error type for the poscar package. It implements made.Error and
// wraps ErrMalformedPOSCAR.
type Error struct {
	message string
	line    int
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("poscar: line %d: %s: %s", err.line, ErrMalformedPOSCAR, err.message)
}

// Line returns the 1-based line where the error was found.
func (err *Error) Line() int { return err.line }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func (err *Error) Unwrap() error { return ErrMalformedPOSCAR }
