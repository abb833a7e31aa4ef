/*
 * modify.go, part of made.
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

import "math"

// wrapTol is how close to 1 a wrapped fractional coordinate can get before
// it is taken to be 0, the same image of the cell face.
const wrapTol = 1e-8

// Fractional returns a copy of the basis with fractional coordinates. A basis that
// is already fractional is just copied. A Cartesian basis needs a cell.
func (B *BasisConfig) Fractional() (*BasisConfig, error) {
	ret := B.Copy()
	if B.Units == Fractional {
		return ret, nil
	}
	if B.Cell == nil {
		return nil, &CError{ErrNilCell, []string{"Fractional"}}
	}
	for i, v := range B.Elements {
		f, err := B.Cell.ToFractional(v.Coords)
		if err != nil {
			return nil, ErrDecorate(err, "Fractional")
		}
		ret.Elements[i].Coords = f
	}
	ret.Units = Fractional
	return ret, nil
}

// WrapToUnitCell returns a copy of the basis with every atom moved, by whole lattice
// vectors, into the cell, so all its fractional coordinates are in [0, 1).
// The copy keeps the units of B. B must have a cell.
func (B *BasisConfig) WrapToUnitCell() (*BasisConfig, error) {
	return B.inFractional("WrapToUnitCell", func(F *BasisConfig) {
		for i := range F.Elements {
			c := &F.Elements[i].Coords
			for j, v := range c {
				c[j] = wrap(v)
			}
		}
	})
}

// TranslateToBottom returns a copy of the basis translated along the c lattice
// vector so that the lowest atom sits at fractional c = 0, leaving the vacuum of
// a slab on top. The copy keeps the units of B. B must have a cell.
func (B *BasisConfig) TranslateToBottom() (*BasisConfig, error) {
	return B.inFractional("TranslateToBottom", func(F *BasisConfig) {
		if F.Len() == 0 {
			return
		}
		low := math.Inf(1)
		for _, v := range F.Elements {
			low = math.Min(low, v.Coords[2])
		}
		for i := range F.Elements {
			F.Elements[i].Coords[2] -= low
		}
	})
}

// inFractional applies f to a fractional copy of B and returns the result in the
// units of B.
func (B *BasisConfig) inFractional(caller string, f func(*BasisConfig)) (*BasisConfig, error) {
	if B == nil {
		return nil, &CError{ErrNilBasis, []string{caller}}
	}
	if B.Cell == nil {
		return nil, &CError{ErrNilCell, []string{caller}}
	}
	F, err := B.Fractional()
	if err != nil {
		return nil, ErrDecorate(err, caller)
	}
	f(F)
	if B.Units == Fractional {
		return F, nil
	}
	C, err := F.Cartesian()
	if err != nil {
		return nil, ErrDecorate(err, caller)
	}
	C.Units = B.Units
	return C, nil
}

func wrap(f float64) float64 {
	w := f - math.Floor(f)
	if 1-w < wrapTol {
		return 0
	}
	return w
}
