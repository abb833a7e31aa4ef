/*
 * xyz.go, part of made.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package xyz reads and writes the XYZ format: one atom per line, an element symbol
//followed by the 3 Cartesian coordinates in Angstrom.
package xyz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/made"
)

// ErrMalformedRecord is wrapped by every error caused by a line that is not
// an atom record, or by an ill-formed XYZ header.
var ErrMalformedRecord = errors.New("malformed XYZ record")

// ToBasisConfig reads the body of an XYZ file, i.e. the atom lines without the atom number
// and comment header. Blank lines are ignored. Every other line must have exactly 4 fields:
// the element symbol and 3 floating point coordinates. The returned basis is Cartesian,
// with no cell or constraints.
func ToBasisConfig(text string) (*made.BasisConfig, error) {
	B := &made.BasisConfig{Units: made.Cartesian}
	B.Elements = make([]made.AtomRecord, 0, AtomsCount(text))
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		at, err := parseAtomLine(line, i+1)
		if err != nil {
			return nil, made.ErrDecorate(err, "ToBasisConfig")
		}
		B.Elements = append(B.Elements, at)
	}
	return B, nil
}

// AtomsCount returns the number of atom records in an XYZ body, that is, the
// number of non-blank lines. It doesn't check that the lines are well formed.
func AtomsCount(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func parseAtomLine(line string, number int) (made.AtomRecord, error) {
	var at made.AtomRecord
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return at, &Error{fmt.Sprintf("%d fields in atom record, expected 4", len(fields)), number, []string{"parseAtomLine"}}
	}
	at.Element = fields[0]
	for i, v := range fields[1:] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return at, &Error{fmt.Sprintf("can't read coordinate %d (%q)", i, v), number, []string{"parseAtomLine"}}
		}
		at.Coords[i] = f
	}
	return at, nil
}

// Read reads a complete XYZ file: the number of atoms, a comment line, and that
// many atom lines. Only the first frame of a multi-XYZ file is read. It returns
// the comment and the basis.
func Read(text string) (string, *made.BasisConfig, error) {
	lines := strings.Split(text, "\n")
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || natoms < 0 {
		return "", nil, &Error{fmt.Sprintf("can't read the number of atoms from %q", strings.TrimSpace(lines[0])), 1, []string{"Read"}}
	}
	if natoms > len(lines)-2 {
		return "", nil, &Error{fmt.Sprintf("%d atoms declared, but only %d lines after the header", natoms, len(lines)-2), len(lines), []string{"Read"}}
	}
	comment := strings.TrimRight(lines[1], "\r")
	body := lines[2 : natoms+2]
	for i, v := range body {
		if strings.TrimSpace(v) == "" {
			return "", nil, &Error{"blank line inside the atom block", i + 3, []string{"Read"}}
		}
	}
	B, err := ToBasisConfig(strings.Join(body, "\n"))
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.line += 2
		}
		return "", nil, made.ErrDecorate(err, "Read")
	}
	return comment, B, nil
}

// Write returns the basis as an XYZ file with the given comment line. Line breaks
// in the comment are replaced by spaces. Fractional bases are converted to Cartesian,
// which requires a cell.
func Write(B *made.BasisConfig, comment string) (string, error) {
	if B == nil {
		return "", made.NewCError(made.ErrNilBasis, "Write")
	}
	C, err := B.Cartesian()
	if err != nil {
		return "", made.ErrDecorate(err, "Write")
	}
	comment = strings.NewReplacer("\r\n", " ", "\n", " ").Replace(comment)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%s\n", C.Len(), comment)
	for _, v := range C.Elements {
		fmt.Fprintf(&sb, "%-2s  %12.6f%12.6f%12.6f\n", v.Element, v.Coords[0], v.Coords[1], v.Coords[2])
	}
	return sb.String(), nil
}

//Errors

// Error is the error type for the xyz package. It implements made.Error and
// wraps ErrMalformedRecord.
type Error struct {
	message string
	line    int //1-based, 0 if unknown
	deco    []string
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("xyz: line %d: %s: %s", err.line, ErrMalformedRecord, err.message)
	}
	return fmt.Sprintf("xyz: %s: %s", ErrMalformedRecord, err.message)
}

// Line returns the 1-based line where the error was found, or 0.
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

func (err *Error) Unwrap() error { return ErrMalformedRecord }
