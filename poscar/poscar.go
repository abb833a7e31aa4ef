/*
 * poscar.go, part of made.
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

//Package poscar writes and reads the POSCAR structure format (VASP 5 layout, with the
//species line), and converts XYZ text to it.
package poscar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/made"
	"github.com/rmera/made/xyz"
)

// Precision is the number of decimal places used for every lattice
// and coordinate value written.
const Precision = 6

// ErrMalformedPOSCAR is wrapped by the errors Read returns for ill-formed input.
var ErrMalformedPOSCAR = errors.New("malformed POSCAR")

// FromXYZ converts the body of an XYZ file (atom lines only) to a POSCAR file.
// As XYZ carries no lattice, the identity cell and a scaling factor of 1.0
// are written, with Cartesian coordinates. Atoms are grouped by element,
// elements in the order they first appear. The element symbols go on a single
// VASP 5 species line, one field per unique symbol, followed by the counts line
// in the same order, since POSCAR readers take both lines positionally.
// The title is the formula of the structure.
// Errors from reading the XYZ text are returned as they are.
func FromXYZ(xyzText string) (string, error) {
	B, err := xyz.ToBasisConfig(xyzText)
	if err != nil {
		return "", made.ErrDecorate(err, "FromXYZ")
	}
	return Write(B, "")
}

// Write returns the basis in POSCAR format. If title is empty, the formula of the basis
// is used. The cell of the basis is written if present, the identity lattice otherwise.
// Fractional bases are written in Direct mode, Cartesian ones in Cartesian mode. If the basis
// has constraints, they are written as selective dynamics flags.
func Write(B *made.BasisConfig, title string) (string, error) {
	if B == nil {
		return "", made.NewCError(made.ErrNilBasis, "Write")
	}
	if B.Constraints != nil && len(B.Constraints) != B.Len() {
		return "", made.NewCError(made.ErrConstraintLen, "Write")
	}
	if title == "" {
		title = Formula(B)
	}
	title = strings.NewReplacer("\r\n", " ", "\n", " ").Replace(title)
	cell := B.Cell
	if cell == nil {
		cell = made.IdentityLattice()
	}
	symbols, counts := B.Species()
	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString("1.0\n")
	for i := 0; i < 3; i++ {
		sb.WriteString(vecLine(cell.Vector(i)) + "\n")
	}
	sb.WriteString("  " + strings.Join(symbols, " ") + "\n")
	scounts := make([]string, len(counts))
	for i, v := range counts {
		scounts[i] = strconv.Itoa(v)
	}
	sb.WriteString("  " + strings.Join(scounts, " ") + "\n")
	if B.Constraints != nil {
		sb.WriteString("Selective dynamics\n")
	}
	if B.Units == made.Fractional {
		sb.WriteString("Direct\n")
	} else {
		sb.WriteString("Cartesian\n")
	}
	for _, i := range B.GroupedOrder() {
		line := vecLine(B.Elements[i].Coords)
		if B.Constraints != nil {
			for _, free := range B.Constraints[i] {
				line += " " + flag(free)
			}
		}
		sb.WriteString(line + "\n")
	}
	return sb.String(), nil
}

// Formula returns the compact formula of the basis, elements in the
// order they first appear, and counts of 1 omitted, e.g. "CH4".
func Formula(B *made.BasisConfig) string {
	symbols, counts := B.Species()
	var sb strings.Builder
	for i, s := range symbols {
		sb.WriteString(s)
		if counts[i] != 1 {
			sb.WriteString(strconv.Itoa(counts[i]))
		}
	}
	return sb.String()
}

func vecLine(v [3]float64) string {
	return fmt.Sprintf("  %.*f %.*f %.*f", Precision, v[0], Precision, v[1], Precision, v[2])
}

func flag(free bool) string {
	if free {
		return "T"
	}
	return "F"
}
