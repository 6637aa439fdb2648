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
import "bytes"
import "testing"

/* -------------------------------------------------------------------------- */

func TestKmerContextReport1(test *testing.T) {
  r :=
    "AA: 1\n"           +
    "AT: 1\n"           +
    "  -> G: 1\n"       +
    "CT: 2\n"           +
    "  -> G: 2\n"       +
    "GA: 1\n"           +
    "  -> A: 1\n"       +
    "GT: 2\n"           +
    "  -> C: 2\n"       +
    "TC: 2\n"           +
    "  -> T: 2\n"       +
    "TG: 3\n"           +
    "  -> A: 1\n"       +
    "  -> T: 2\n"

  counts, _ := NewKmerContextCounts(2)
  counts.CountSequence([]byte("ATGTCTGTCTGAA"))

  buffer := bytes.Buffer{}
  if err := counts.WriteReport(&buffer); err != nil {
    test.Error("test failed")
  }
  if buffer.String() != r {
    test.Error("test failed")
  }
}

func TestKmerContextReport2(test *testing.T) {
  // empty statistics produce an empty report
  counts, _ := NewKmerContextCounts(2)

  buffer := bytes.Buffer{}
  if err := counts.WriteReport(&buffer); err != nil {
    test.Error("test failed")
  }
  if buffer.Len() != 0 {
    test.Error("test failed")
  }
}
