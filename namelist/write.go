/*
 * write.go, part of made.
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
	"fmt"
	"sort"
	"strings"
)

// Format writes the table back as namelist input: the namelists in T.Order, keys
// sorted, followed by the cards. NumberSequence values are written as array keys
// indexed from 1, in their stored order. An empty NumberSequence has no array syntax
// and is left out, so its key does not survive a round trip; Parse never produces
// one. Namelists in T.Namelists but not in
// T.Order are written after the others, sorted by name.
func Format(T *Table) string {
	var sb strings.Builder
	for _, name := range formatOrder(T) {
		kv := T.Namelists[name]
		fmt.Fprintf(&sb, "&%s\n", name)
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := kv[k]
			if f, ok := v.Floats(); ok {
				for i, n := range f {
					fmt.Fprintf(&sb, "   %s(%d) = %s\n", k, i+1, NumberValue(n))
				}
				continue
			}
			fmt.Fprintf(&sb, "   %s = %s\n", k, v)
		}
		sb.WriteString("/\n")
	}
	sb.WriteString(T.Cards)
	return sb.String()
}

func formatOrder(T *Table) []string {
	order := make([]string, 0, len(T.Namelists))
	seen := make(map[string]bool, len(T.Order))
	for _, name := range T.Order {
		if _, ok := T.Namelists[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range T.Namelists {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
