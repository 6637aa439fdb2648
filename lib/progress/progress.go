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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Simple terminal progress bar for loops of length N. The bar is redrawn
// every K iterations and on the first and last iteration.
type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, n/k, 40}
  if k > n {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  p := float64(i)/float64(progress.N)
  w := progress.LineWidth-2
  m := int(p*float64(w))

  var buffer strings.Builder
  // delete current line and redraw the bar
  fmt.Fprintf(&buffer, "%s|%s%s| %6.2f%%",
    __line_del__,
    strings.Repeat(">", m),
    strings.Repeat(" ", w-m), p*100)
  if i == progress.N {
    fmt.Fprintf(&buffer, "\n")
  }
  return buffer.String()
}

func (progress Progress) PrintStderr(i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(os.Stderr, progress.Exec(i))
  }
}
