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
import "bufio"
import "bytes"
import "io"

/* -------------------------------------------------------------------------- */

// Write a human readable report. Each k-mer is printed on a line of its own
// together with its total count, followed by one indented line per observed
// context character. K-mers and context characters appear in lexicographic
// order so that the output is deterministic.
func (obj KmerContextCounts) WriteReport(writer io.Writer) error {
  for it := obj.Iterate(); it.Ok(); it.Next() {
    if _, err := fmt.Fprintf(writer, "%s: %d\n", it.GetKmer(), it.GetCount()); err != nil {
      return err
    }
    for _, context := range it.GetContexts() {
      if _, err := fmt.Fprintf(writer, "  -> %c: %d\n", context, obj.Contexts[it.GetKmer()][context]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj KmerContextCounts) ExportReport(filename string) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteReport(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, false)
}
