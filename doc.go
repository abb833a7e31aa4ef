/*
 * doc.go, part of made.
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

/*
Package made holds the data model shared by the structure-text converters of this
module: atoms, bases, lattices and the error interface all packages implement.

The actual parsing and writing lives in the subpackages:

	xyz       Reads XYZ bodies and files into a BasisConfig, counts atom records,
	          writes XYZ files.

	poscar    Converts XYZ text into POSCAR text, writes any BasisConfig as POSCAR
	          and reads POSCAR/CONTCAR files back.

	namelist  Parses Fortran namelist input (the &control ... / blocks of plane-wave
	          codes such as Quantum ESPRESSO) into typed values, plus the trailing
	          cards text.

All the functions in these packages are pure: they take a string already read by the
caller and return fresh values, so they can be called concurrently without any
coordination.

The lattice-manipulation helpers that operate on a full material (scaling lattice
vectors, centering the basis in the cell) are not part of this module. They take a
BasisConfig and a Lattice as produced here.
*/
package made
