/*
 * rules.go, part of made.
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
	"regexp"
	"strconv"
	"strings"
)

// Assignment is one "key = value" pair as found in a namelist block,
// before its value is classified.
type Assignment struct {
	Key     string //lowercase, without the index
	Index   string //what was between the parentheses of an array key, if any
	Indexed bool
	Raw     string //the value as written, quotes included
	Offset  int    //byte offset of the key in the parsed text
}

// Rule is a named grammar for namelist values. Match returns the value and
// true if the assignment follows the grammar, false otherwise.
type Rule struct {
	Name  string
	Match func(a Assignment) (Value, bool)
}

// The grammars understood by the default parser.
var (
	// IndexedNumberRule matches array keys with a number, such as celldm(1) = 10.2.
	// The value is a one-element NumberSequence, the parser accumulates them.
	IndexedNumberRule = Rule{"indexed number", func(a Assignment) (Value, bool) {
		if !a.Indexed {
			return Value{}, false
		}
		f, ok := ParseNumber(a.Raw)
		if !ok {
			return Value{}, false
		}
		return SequenceValue(f), true
	}}

	// QuotedTextRule matches strings in single or double quotes, such as calculation = 'scf'.
	QuotedTextRule = Rule{"quoted text", func(a Assignment) (Value, bool) {
		if a.Indexed {
			return Value{}, false
		}
		s, ok := ParseQuoted(a.Raw)
		if !ok {
			return Value{}, false
		}
		return TextValue(s), true
	}}

	// FlagRule matches logicals: .true., .false., true or false, in any case.
	FlagRule = Rule{"flag", func(a Assignment) (Value, bool) {
		if a.Indexed {
			return Value{}, false
		}
		b, ok := ParseFlag(a.Raw)
		if !ok {
			return Value{}, false
		}
		return FlagValue(b), true
	}}

	// NumberRule matches integer and real numbers, such as ecutwfc = 30 or conv_thr = 1.0d-8.
	NumberRule = Rule{"number", func(a Assignment) (Value, bool) {
		if a.Indexed {
			return Value{}, false
		}
		f, ok := ParseNumber(a.Raw)
		if !ok {
			return Value{}, false
		}
		return NumberValue(f), true
	}}
)

// DefaultRules is the grammar used by ParseFortranFile, in order of precedence.
var DefaultRules = []Rule{IndexedNumberRule, QuotedTextRule, FlagRule, NumberRule}

// Classify applies the rules in order to a, and returns the value given by the first one that
// matches, the name of that rule, and true. If no rule matches, it returns false.
func Classify(rules []Rule, a Assignment) (Value, string, bool) {
	for _, r := range rules {
		if v, ok := r.Match(a); ok {
			return v, r.Name, true
		}
	}
	return Value{}, "", false
}

var numberRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eEdD][+-]?\d+)?$`)

// ParseNumber parses a Fortran integer or real literal. Double precision
// exponents (1.0d-3) are accepted.
func ParseNumber(s string) (float64, bool) {
	if !numberRE.MatchString(s) {
		return 0, false
	}
	s = strings.Map(func(r rune) rune {
		if r == 'd' || r == 'D' {
			return 'e'
		}
		return r
	}, s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseFlag parses a logical literal. It returns the value, and whether s was a logical.
func ParseFlag(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case ".true.", "true":
		return true, true
	case ".false.", "false":
		return false, true
	}
	return false, false
}

// ParseQuoted returns the content of a string delimited by single or double quotes.
// A doubled delimiter inside the string stands for one.
func ParseQuoted(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	single := string(q)
	double := single + single
	if strings.Contains(strings.ReplaceAll(inner, double, ""), single) {
		return "", false
	}
	return strings.ReplaceAll(inner, double, single), true
}
