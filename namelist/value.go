/*
 * value.go, part of made.
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
	"encoding/json"
	"strconv"
	"strings"
)

// Kind is the type of a namelist value.
type Kind int

const (
	Number         Kind = iota //a real or integer number, kept as float64
	Text                       //a quoted string, without the quotes
	Flag                       //a logical
	NumberSequence             //the values of an array key such as celldm(1), in the order they were read
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	case Flag:
		return "flag"
	case NumberSequence:
		return "number sequence"
	}
	return "unknown kind " + strconv.Itoa(int(k))
}

// Value is a value read from a namelist. It is always one of the
// kinds above, which can be queried with Kind.
type Value struct {
	kind Kind
	num  float64
	text string
	flag bool
	seq  []float64
}

// NumberValue returns a Number value.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{kind: Text, text: s} }

// FlagValue returns a Flag value.
func FlagValue(b bool) Value { return Value{kind: Flag, flag: b} }

// SequenceValue returns a NumberSequence value holding a copy of f.
func SequenceValue(f ...float64) Value {
	seq := make([]float64, len(f))
	copy(seq, f)
	return Value{kind: NumberSequence, seq: seq}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Float returns the number held by v, and whether v is a Number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == Number }

// Text returns the string held by v, and whether v is a Text.
func (v Value) Text() (string, bool) { return v.text, v.kind == Text }

// Flag returns the logical held by v, and whether v is a Flag.
func (v Value) Flag() (bool, bool) { return v.flag, v.kind == Flag }

// Floats returns a copy of the numbers held by v, and whether v is a NumberSequence.
func (v Value) Floats() ([]float64, bool) {
	if v.kind != NumberSequence {
		return nil, false
	}
	ret := make([]float64, len(v.seq))
	copy(ret, v.seq)
	return ret, true
}

// appended returns a NumberSequence with the numbers of v followed by those of o.
func (v Value) appended(o Value) Value {
	seq := make([]float64, 0, len(v.seq)+len(o.seq))
	seq = append(seq, v.seq...)
	return Value{kind: NumberSequence, seq: append(seq, o.seq...)}
}

// Interface returns the value as a float64, string, bool or []float64.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Number:
		return v.num
	case Text:
		return v.text
	case Flag:
		return v.flag
	}
	f, _ := v.Floats()
	return f
}

// Equal returns true if both values are of the same kind and hold the same data.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == o.num
	case Text:
		return v.text == o.text
	case Flag:
		return v.flag == o.flag
	}
	if len(v.seq) != len(o.seq) {
		return false
	}
	for i := range v.seq {
		if v.seq[i] != o.seq[i] {
			return false
		}
	}
	return true
}

// String returns the value in Fortran namelist notation.
func (v Value) String() string {
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case Text:
		return "'" + strings.ReplaceAll(v.text, "'", "''") + "'"
	case Flag:
		if v.flag {
			return ".true."
		}
		return ".false."
	}
	s := make([]string, len(v.seq))
	for i, f := range v.seq {
		s[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(s, ", ")
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
