/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package kmercontext

/* -------------------------------------------------------------------------- */

import "fmt"

/* -------------------------------------------------------------------------- */

// Structure containing named sequences.
type StringSet map[string][]byte

/* -------------------------------------------------------------------------- */

func NewStringSet(seqnames []string, sequences [][]byte) StringSet {
  if len(seqnames) != len(sequences) {
    panic("NewStringSet(): invalid parameters")
  }
  s := make(StringSet)

  for i := 0; i < len(sequences); i++ {
    s[seqnames[i]] = sequences[i]
  }
  return s
}

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

func (s StringSet) Get(name string) ([]byte, error) {
  result, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("Get(): invalid sequence name `%s'", name)
  }
  return result, nil
}
