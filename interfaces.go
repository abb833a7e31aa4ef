/*
 * interfaces.go, part of made.
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

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice resulting from the call. An empty string adds nothing.
}

// ErrDecorate adds the caller's name to the decoration of err, if err implements Error,
// and returns err. Other errors are returned untouched.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// CError is the error type returned by this package.
type CError struct {
	msg  string
	deco []string
}

// NewCError returns a CError with the given message and, optionally, the
// initial decoration.
func NewCError(msg string, deco ...string) *CError {
	return &CError{msg, deco}
}

// Error returns the error message.
func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

const (
	ErrNilCell       = "made: basis has no cell"
	ErrNilBasis      = "made: nil basis"
	ErrSingularCell  = "made: singular cell"
	ErrLatticeShape  = "made: a lattice must be a 3x3 matrix"
	ErrConstraintLen = "made: number of constraints differs from the number of atoms"
)
