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
import "os"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Structure containing named sequences in file order.
type OrderedStringSet struct {
  Sequences   StringSet
  Seqnames  []string
}

/* -------------------------------------------------------------------------- */

func NewOrderedStringSet(seqnames []string, sequences [][]byte) OrderedStringSet {
  if len(seqnames) != len(sequences) {
    panic("NewOrderedStringSet(): invalid parameters")
  }
  n := len(sequences)
  s := make(StringSet)
  t := make([]string, n)

  for i := 0; i < n; i++ {
    if _, ok := s[seqnames[i]]; ok {
      panic(fmt.Sprintf("duplicate sequence name `%s'", seqnames[i]))
    } else {
      s[seqnames[i]] = sequences[i]
    }
    t[i] = seqnames[i]
  }
  return OrderedStringSet{s, t}
}

func EmptyOrderedStringSet() OrderedStringSet {
  return OrderedStringSet{EmptyStringSet(), []string{}}
}

/* -------------------------------------------------------------------------- */

func (obj OrderedStringSet) Get(name string) ([]byte, error) {
  return obj.Sequences.Get(name)
}

/* -------------------------------------------------------------------------- */

// Parse fasta formatted input. Lines starting with `>' delimit records; the
// first field after `>' names the record. All other lines are stripped of
// surrounding whitespace and appended to the current record. Records that
// accumulate no characters are dropped. Data before the first header has no
// record to belong to and is skipped.
func (obj *OrderedStringSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  // current sequence
  name := ""
  seq  := []byte{}

  save := func() error {
    if name == "" || len(seq) == 0 {
      return nil
    }
    if _, ok := obj.Sequences[name]; ok {
      return fmt.Errorf("sequence name `%s' occurred multiple times", name)
    }
    obj.Sequences[name] = seq
    obj.Seqnames        = append(obj.Seqnames, name)
    return nil
  }
  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if err := save(); err != nil {
        return err
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): header without sequence name")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      if name == "" {
        // no active record yet
        continue
      }
      // append sequence data
      seq = append(seq, strings.TrimSpace(line)...)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  return save()
}

func (obj *OrderedStringSet) ImportFasta(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return obj.ReadFasta(f)
}

func (obj OrderedStringSet) WriteFasta(writer io.Writer) error {
  for _, name := range obj.Seqnames {
    seq := obj.Sequences[name]
    if _, err := fmt.Fprintf(writer,  ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := i+80
      if to >= len(seq) {
        to = len(seq)
      }
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj OrderedStringSet) ExportFasta(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteFasta(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
