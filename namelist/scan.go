/*
 * scan.go, part of made.
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
	"strings"
)

// block is a namelist as found in the text.
type block struct {
	name   string //lowercase
	body   string //text between the name and the terminating '/'
	offset int    //offset of body in the text
	start  int    //offset of the '&'
}

// locate finds every namelist block of text, in order, and returns them with the text
// that follows the last one. A block starts with &name anywhere outside a '!' comment
// and ends at the first '/' that is neither quoted nor in a comment. Text before and
// between blocks is not part of any namelist and is skipped. The trailing text is
// returned verbatim from the line after the last '/', or from just after it when the
// line goes on.
func locate(text string) ([]block, string, error) {
	var blocks []block
	tail := 0
	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '!':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			continue
		case c != '&':
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isWordChar(text[j]) {
			j++
		}
		if j == i+1 {
			if lineStart(text, i) {
				return nil, "", newError(ErrNamelistNotFound, "'&' not followed by a namelist name", "", "", text, i)
			}
			i++
			continue
		}
		name := strings.ToLower(text[i+1 : j])
		slash := terminator(text, j)
		if slash < 0 {
			return nil, "", newError(ErrNamelistNotFound, "no '/' closes the namelist", name, "", text, i)
		}
		blocks = append(blocks, block{name: name, body: text[j:slash], offset: j, start: i})
		tail = slash + 1
		rest := text[tail:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		if r := strings.TrimSpace(rest); r == "" || r[0] == '!' {
			tail += len(rest)
			if tail < len(text) {
				tail++ //the newline
			}
		}
		i = slash + 1
	}
	if len(blocks) == 0 {
		return nil, text, nil
	}
	return blocks, text[tail:], nil
}

// lineStart returns true if only blanks precede offset i in its line.
func lineStart(text string, i int) bool {
	for i--; i >= 0 && text[i] != '\n'; i-- {
		if text[i] != ' ' && text[i] != '\t' && text[i] != '\r' {
			return false
		}
	}
	return true
}

// terminator returns the offset of the '/' that closes the namelist whose
// body starts at from, or -1 if there is none.
func terminator(text string, from int) int {
	var quote byte
	for i := from; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0 //a doubled quote just closes and reopens
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '!':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '/':
			return i
		}
	}
	return -1
}

// skipBlank returns the offset of the first character at or after from that
// is neither whitespace nor part of a '!' comment.
func skipBlank(text string, from int) int {
	i := from
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			i++
		case '!':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		default:
			return i
		}
	}
	return i
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isKeyStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// assignments splits the body of a namelist into its key = value pairs. Pairs are
// separated by whitespace, commas or both. text is the whole parsed text, used for
// error positions.
func assignments(b block, text string) ([]Assignment, error) {
	var ret []Assignment
	body := b.body
	i := 0
	skipSeparators := func() {
		for i < len(body) {
			if body[i] == ',' {
				i++
				continue
			}
			n := skipBlank(body, i)
			if n == i {
				return
			}
			i = n
		}
	}
	skipSpaces := func() {
		for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\r' || body[i] == '\n') {
			i++
		}
	}
	for {
		skipSeparators()
		if i >= len(body) {
			return ret, nil
		}
		a := Assignment{Offset: b.offset + i}
		if !isKeyStart(body[i]) {
			return nil, newError(ErrUnparseableValue, "expected a key, found "+quoteToken(body[i:]), b.name, "", text, b.offset+i)
		}
		start := i
		for i < len(body) && (isWordChar(body[i]) || body[i] == '%') {
			i++
		}
		a.Key = strings.ToLower(body[start:i])
		skipSpaces()
		if i < len(body) && body[i] == '(' {
			end := strings.IndexByte(body[i:], ')')
			if end < 0 {
				return nil, newError(ErrUnparseableValue, "unclosed index", b.name, a.Key, text, b.offset+i)
			}
			a.Indexed = true
			a.Index = strings.TrimSpace(body[i+1 : i+end])
			i += end + 1
			skipSpaces()
		}
		if i >= len(body) || body[i] != '=' {
			return nil, newError(ErrUnparseableValue, "expected '=' after the key", b.name, a.Key, text, b.offset+i)
		}
		i++
		skipSpaces()
		if i >= len(body) {
			return nil, newError(ErrUnparseableValue, "missing value", b.name, a.Key, text, b.offset+i)
		}
		start = i
		if q := body[i]; q == '\'' || q == '"' {
			i++
			for {
				for i < len(body) && body[i] != q {
					i++
				}
				if i >= len(body) {
					return nil, newError(ErrUnparseableValue, "unterminated string", b.name, a.Key, text, b.offset+start)
				}
				i++
				if i < len(body) && body[i] == q { //doubled quote
					i++
					continue
				}
				break
			}
		} else {
			for i < len(body) && !strings.ContainsRune(" \t\r\n,!", rune(body[i])) {
				i++
			}
		}
		a.Raw = body[start:i]
		if a.Raw == "" {
			return nil, newError(ErrUnparseableValue, "missing value", b.name, a.Key, text, b.offset+start)
		}
		ret = append(ret, a)
	}
}

// quoteToken returns the first field of s, quoted, for error messages.
func quoteToken(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return "nothing"
	}
	return "'" + f[0] + "'"
}
