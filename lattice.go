/*
 * lattice.go, part of made.
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

package made

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice is a periodic cell. The rows of the underlying 3x3 matrix
// are the lattice vectors a, b and c, in Angstrom.
type Lattice struct {
	vecs *mat.Dense
}

// NewLattice returns a lattice with the given vectors.
func NewLattice(a, b, c [3]float64) *Lattice {
	d := make([]float64, 0, 9)
	d = append(d, a[:]...)
	d = append(d, b[:]...)
	d = append(d, c[:]...)
	return &Lattice{mat.NewDense(3, 3, d)}
}

// IdentityLattice returns the unit cubic cell. It is used as a placeholder
// when a format needs a lattice but none is known.
func IdentityLattice() *Lattice {
	return NewLattice([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1})
}

// LatticeFromDense builds a lattice from a 3x3 matrix, copying it.
func LatticeFromDense(d mat.Matrix) (*Lattice, error) {
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return nil, &CError{ErrLatticeShape, []string{"LatticeFromDense"}}
	}
	return &Lattice{mat.DenseCopyOf(d)}, nil
}

// Vector returns the ith lattice vector (0, 1 or 2). It panics if i is out of range.
func (L *Lattice) Vector(i int) [3]float64 {
	var v [3]float64
	mat.Row(v[:], i, L.vecs)
	return v
}

// Dense returns a copy of the lattice as a gonum matrix.
func (L *Lattice) Dense() *mat.Dense {
	return mat.DenseCopyOf(L.vecs)
}

// Volume returns the volume of the cell.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.vecs))
}

// Scaled returns a copy of the lattice with every vector multiplied by f.
func (L *Lattice) Scaled(f float64) *Lattice {
	d := mat.NewDense(3, 3, nil)
	d.Scale(f, L.vecs)
	return &Lattice{d}
}

// Copy returns a deep copy of the lattice.
func (L *Lattice) Copy() *Lattice {
	if L == nil {
		return nil
	}
	return &Lattice{mat.DenseCopyOf(L.vecs)}
}

// ToCartesian converts fractional coordinates to Cartesian ones.
func (L *Lattice) ToCartesian(frac [3]float64) [3]float64 {
	var v mat.VecDense
	v.MulVec(L.vecs.T(), mat.NewVecDense(3, frac[:]))
	return [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
}

// ToFractional converts Cartesian coordinates to fractional ones. It fails
// if the lattice vectors are linearly dependent.
func (L *Lattice) ToFractional(cart [3]float64) ([3]float64, error) {
	var v mat.VecDense
	if err := v.SolveVec(L.vecs.T(), mat.NewVecDense(3, cart[:])); err != nil {
		return [3]float64{}, &CError{ErrSingularCell + ": " + err.Error(), []string{"ToFractional"}}
	}
	return [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}, nil
}
