/*
 * namelist.go, part of made.
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

//Package namelist parses Fortran namelist input, as used by plane-wave codes such as
//Quantum ESPRESSO:
//
//	&control
//	   calculation = 'scf'
//	   tprnfor = .true.
//	/
//	&system
//	   ibrav = 2, celldm(1) = 10.2, nat = 2, ntyp = 1
//	/
//	ATOMIC_SPECIES
//	 Si  28.086  Si.pz-vbc.UPF
//
//Each namelist becomes a map from key to typed value. The text after the last namelist
//(the "cards") is not parsed, it is returned verbatim.
package namelist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmera/made"
)

var (
	// ErrNamelistNotFound is wrapped by the errors for a &name without a
	// terminating '/'.
	ErrNamelistNotFound = errors.New("namelist not found")
	// ErrUnparseableValue is wrapped by the errors for text inside a namelist that is not
	// a key = value pair, or whose value matches no rule of the grammar.
	ErrUnparseableValue = errors.New("unparseable value")
	// ErrCardsNotFound is wrapped by the error returned by a Parser that requires
	// cards when there are none.
	ErrCardsNotFound = errors.New("cards not found")
)

// KeyValues holds the values of one namelist, by lowercase key.
type KeyValues map[string]Value

// Table is the result of parsing a namelist input.
type Table struct {
	Namelists map[string]KeyValues `json:"namelists" yaml:"namelists"` //by lowercase name
	Order     []string             `json:"order" yaml:"order"`         //the namelist names in the order they first appear
	Cards     string               `json:"cards" yaml:"cards"`
}

// Get returns the value of key in the given namelist. Names are not case sensitive.
func (T *Table) Get(namelist, key string) (Value, bool) {
	kv, ok := T.Namelists[strings.ToLower(namelist)]
	if !ok {
		return Value{}, false
	}
	v, ok := kv[strings.ToLower(key)]
	return v, ok
}

// Parser parses namelist input. The zero value uses DefaultRules and
// accepts inputs without cards.
type Parser struct {
	//The grammar, in order of precedence. nil means DefaultRules.
	Rules []Rule
	//If true, an input with no text after the namelists is an error.
	RequireCards bool
}

// NewParser returns a parser with the default grammar that accepts inputs without cards.
func NewParser() *Parser {
	P := new(Parser)
	P.SetDefaults()
	return P
}

// SetDefaults sets the default grammar and cards policy.
func (P *Parser) SetDefaults() {
	P.Rules = make([]Rule, len(DefaultRules))
	copy(P.Rules, DefaultRules)
	P.RequireCards = false
}

// ParseFortranFile parses text with the default parser.
func ParseFortranFile(text string) (*Table, error) {
	T, err := NewParser().Parse(text)
	if err != nil {
		return nil, made.ErrDecorate(err, "ParseFortranFile")
	}
	return T, nil
}

// Parse reads every namelist in text. Namelist names and keys are lowercased. Values
// are classified by the first rule of the grammar that matches them; a value that matches
// none makes the whole parse fail. Array keys (celldm(1) = ...) matched by a rule
// returning a NumberSequence accumulate their values in the order they appear, the
// indexes themselves are not kept.
//
// A namelist that appears more than once is merged: the keys of all the blocks are kept,
// and for a key present in several blocks the last block wins.
//
// Every &name outside a '!' comment opens a namelist, wherever it appears; one that no '/'
// closes is an ErrNamelistNotFound. Text before or between namelists belongs to none of them.
// The text after the last namelist is returned as Table.Cards, verbatim. If it is empty or
// blank, Cards is the empty string, which is an error only if P.RequireCards is set.
func (P *Parser) Parse(text string) (*Table, error) {
	rules := P.Rules
	if rules == nil {
		rules = DefaultRules
	}
	blocks, cards, err := locate(text)
	if err != nil {
		return nil, made.ErrDecorate(err, "Parse")
	}
	T := &Table{Namelists: make(map[string]KeyValues, len(blocks))}
	for _, b := range blocks {
		kv, err := blockValues(b, text, rules)
		if err != nil {
			return nil, made.ErrDecorate(err, "Parse")
		}
		merged, ok := T.Namelists[b.name]
		if !ok {
			T.Order = append(T.Order, b.name)
			T.Namelists[b.name] = kv
			continue
		}
		for k, v := range kv {
			merged[k] = v
		}
	}
	if strings.TrimSpace(cards) == "" {
		cards = ""
		if P.RequireCards {
			return nil, newError(ErrCardsNotFound, "no text after the last namelist", "", "", text, len(text))
		}
	}
	T.Cards = cards
	return T, nil
}

// blockValues classifies every assignment of a block.
func blockValues(b block, text string, rules []Rule) (KeyValues, error) {
	as, err := assignments(b, text)
	if err != nil {
		return nil, err
	}
	kv := make(KeyValues, len(as))
	for _, a := range as {
		v, _, ok := Classify(rules, a)
		if !ok {
			return nil, newError(ErrUnparseableValue, fmt.Sprintf("%s matches no value grammar", a.Raw), b.name, a.Key, text, a.Offset)
		}
		if prev, ok := kv[a.Key]; ok && a.Indexed && v.Kind() == NumberSequence && prev.Kind() == NumberSequence {
			v = prev.appended(v)
		}
		kv[a.Key] = v
	}
	return kv, nil
}

//Errors

// Error is the error type for the namelist package. It implements made.Error and wraps
// one of ErrNamelistNotFound, ErrUnparseableValue or ErrCardsNotFound.
type Error struct {
	kind     error
	message  string
	namelist string
	key      string
	line     int
	deco     []string
}

func newError(kind error, message, namelist, key, text string, offset int) *Error {
	line := strings.Count(text[:offset], "\n") + 1
	return &Error{kind: kind, message: message, namelist: namelist, key: key, line: line}
}

func (err *Error) Error() string {
	where := fmt.Sprintf("namelist: line %d", err.line)
	if err.namelist != "" {
		where += ": &" + err.namelist
	}
	if err.key != "" {
		where += ": " + err.key
	}
	return fmt.Sprintf("%s: %s: %s", where, err.kind, err.message)
}

// Namelist returns the name of the namelist where the error was found, if any.
func (err *Error) Namelist() string { return err.namelist }

// Key returns the key whose value could not be read, if any.
func (err *Error) Key() string { return err.key }

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

func (err *Error) Unwrap() error { return err.kind }
