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

//import "fmt"

/* -------------------------------------------------------------------------- */

// Iterator over all k-mers of a sequence together with their context, i.e.
// the character immediately following the k-mer. The last k-mer of a
// sequence has no context.
type KmerContextIterator struct {
  sequence []byte
  k        int
  i        int
}

func NewKmerContextIterator(sequence []byte, k int) KmerContextIterator {
  return KmerContextIterator{sequence: sequence, k: k}
}

func (obj KmerContextIterator) Ok() bool {
  return obj.k >= 1 && obj.i+obj.k <= len(obj.sequence)
}

func (obj KmerContextIterator) GetKmer() string {
  return string(obj.sequence[obj.i:obj.i+obj.k])
}

func (obj KmerContextIterator) GetContext() (byte, bool) {
  if j := obj.i+obj.k; j < len(obj.sequence) {
    return obj.sequence[j], true
  } else {
    return 0, false
  }
}

func (obj *KmerContextIterator) Next() {
  obj.i++
}
