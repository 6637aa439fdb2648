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
import "testing"

/* -------------------------------------------------------------------------- */

func TestKmerContextIterator1(test *testing.T) {
  r := []string{
    "AT", "TG", "GT", "TC", "CT", "TG", "GT", "TC", "CT", "TG", "GA", "AA" }
  s := []string{
    "G", "T", "C", "T", "G", "T", "C", "T", "G", "A", "A", "" }

  i := 0
  for it := NewKmerContextIterator([]byte("ATGTCTGTCTGAA"), 2); it.Ok(); it.Next() {
    if it.GetKmer() != r[i] {
      test.Error("test failed")
    }
    if context, ok := it.GetContext(); ok {
      if string(context) != s[i] {
        test.Error("test failed")
      }
    } else {
      if s[i] != "" {
        test.Error("test failed")
      }
    }
    i++
  }
  if i != len(r) {
    test.Error("test failed")
  }
}

func TestKmerContextIterator2(test *testing.T) {
  sequence := []byte("ACGTACGT")

  // for every valid k the iterator yields len(sequence)-k+1 pairs and
  // only the last one has no context
  for k := 1; k <= len(sequence); k++ {
    n := 0
    for it := NewKmerContextIterator(sequence, k); it.Ok(); it.Next() {
      _, ok := it.GetContext()
      if ok != (n != len(sequence)-k) {
        test.Error("test failed")
      }
      n++
    }
    if n != len(sequence)-k+1 {
      test.Error("test failed")
    }
  }
}

func TestKmerContextIterator3(test *testing.T) {
  sequence := []byte("ACGTACGT")

  // k exceeds the sequence length
  for _, k := range []int{9, 12, 100} {
    if it := NewKmerContextIterator(sequence, k); it.Ok() {
      test.Error("test failed")
    }
  }
}

func TestKmerContextIterator4(test *testing.T) {
  sequence := []byte("ACGTACGT")

  // k equal to the sequence length yields a single k-mer without context
  it := NewKmerContextIterator(sequence, len(sequence))
  if !it.Ok() {
    test.Error("test failed")
  }
  if it.GetKmer() != "ACGTACGT" {
    test.Error("test failed")
  }
  if _, ok := it.GetContext(); ok {
    test.Error("test failed")
  }
  it.Next()
  if it.Ok() {
    test.Error("test failed")
  }
}
