/*
 * basis.go, part of made.
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

package made

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Units tells how the coordinates of a basis are to be interpreted.
type Units string

const (
	Cartesian  Units = "cartesian"
	Fractional Units = "fractional"
)

// AtomRecord is one atom of a basis: its element symbol, as given in the
// source text, and its coordinates.
type AtomRecord struct {
	Element string
	Coords  [3]float64
}

// Constraint holds, for each axis, whether the atom is allowed to move.
// It corresponds to the T/F flags of POSCAR selective dynamics.
type Constraint [3]bool

// BasisConfig is the set of atoms of a structure, in the order they were read.
// Cell and Constraints are optional, nil meaning "unset". When Constraints is
// set it has one element per atom.
type BasisConfig struct {
	Elements    []AtomRecord
	Units       Units
	Cell        *Lattice
	Constraints []Constraint
}

// Len returns the number of atoms in the basis.
func (B *BasisConfig) Len() int {
	return len(B.Elements)
}

// Species returns the unique element symbols of the basis in the order they
// first appear, and how many atoms of each there are.
func (B *BasisConfig) Species() ([]string, []int) {
	symbols := make([]string, 0, 4)
	counts := make([]int, 0, 4)
	index := make(map[string]int)
	for _, v := range B.Elements {
		i, ok := index[v.Element]
		if !ok {
			i = len(symbols)
			index[v.Element] = i
			symbols = append(symbols, v.Element)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return symbols, counts
}

// GroupedOrder returns the atom indexes sorted so that atoms of the same element
// are together, elements in first-seen order and atoms of one element in their
// original order.
func (B *BasisConfig) GroupedOrder() []int {
	symbols, _ := B.Species()
	ret := make([]int, 0, B.Len())
	for _, s := range symbols {
		for i, v := range B.Elements {
			if v.Element == s {
				ret = append(ret, i)
			}
		}
	}
	return ret
}

// CoordMatrix returns the coordinates of the basis as a Nx3 gonum matrix, one atom
// per row. It returns nil for an empty basis.
func (B *BasisConfig) CoordMatrix() *mat.Dense {
	if B.Len() == 0 {
		return nil
	}
	d := make([]float64, 0, 3*B.Len())
	for _, v := range B.Elements {
		d = append(d, v.Coords[:]...)
	}
	return mat.NewDense(B.Len(), 3, d)
}

// Cartesian returns a copy of the basis with Cartesian coordinates. A basis that is
// already Cartesian is just copied. A fractional basis needs a cell.
func (B *BasisConfig) Cartesian() (*BasisConfig, error) {
	ret := B.Copy()
	if B.Units != Fractional {
		return ret, nil
	}
	if B.Cell == nil {
		return nil, &CError{ErrNilCell, []string{"Cartesian"}}
	}
	if B.Len() == 0 {
		ret.Units = Cartesian
		return ret, nil
	}
	var c mat.Dense
	c.Mul(B.CoordMatrix(), B.Cell.vecs)
	for i := range ret.Elements {
		mat.Row(ret.Elements[i].Coords[:], i, &c)
	}
	ret.Units = Cartesian
	return ret, nil
}

// Copy returns a deep copy of the basis.
func (B *BasisConfig) Copy() *BasisConfig {
	ret := &BasisConfig{Units: B.Units, Cell: B.Cell.Copy()}
	if B.Elements != nil {
		ret.Elements = make([]AtomRecord, len(B.Elements))
		copy(ret.Elements, B.Elements)
	}
	if B.Constraints != nil {
		ret.Constraints = make([]Constraint, len(B.Constraints))
		copy(ret.Constraints, B.Constraints)
	}
	return ret
}

// SameAtoms returns true if both bases have the same elements, in the same order,
// with coordinates that differ by no more than tol.
func (B *BasisConfig) SameAtoms(O *BasisConfig, tol float64) bool {
	if B.Len() != O.Len() {
		return false
	}
	for i, v := range B.Elements {
		o := O.Elements[i]
		if v.Element != o.Element || !floats.EqualApprox(v.Coords[:], o.Coords[:], tol) {
			return false
		}
	}
	return true
}
