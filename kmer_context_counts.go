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
import "sort"

/* -------------------------------------------------------------------------- */

// Two-level frequency statistics of all k-mers observed in a set of
// sequences. Counts maps a k-mer to its total number of occurrences.
// Contexts maps a k-mer to the frequencies of the characters that
// immediately follow it. A k-mer that only occurs at the very end of
// sequences has a count but no context entry, hence the sum over all
// context frequencies of a k-mer never exceeds its total count.
type KmerContextCounts struct {
  K        int
  Counts   map[string]int
  Contexts map[string]map[byte]int
}

/* -------------------------------------------------------------------------- */

func NewKmerContextCounts(k int) (KmerContextCounts, error) {
  if k < 1 {
    return KmerContextCounts{}, fmt.Errorf("invalid k-mer length `%d'", k)
  }
  r := KmerContextCounts{K: k}
  r.Counts   = make(map[string]int)
  r.Contexts = make(map[string]map[byte]int)
  return r, nil
}

/* -------------------------------------------------------------------------- */

func (obj KmerContextCounts) Len() int {
  return len(obj.Counts)
}

func (obj KmerContextCounts) GetCount(kmer string) int {
  if c, ok := obj.Counts[kmer]; ok {
    return c
  } else {
    return 0
  }
}

func (obj KmerContextCounts) GetContextCount(kmer string, context byte) int {
  if m, ok := obj.Contexts[kmer]; ok {
    return m[context]
  } else {
    return 0
  }
}

/* -------------------------------------------------------------------------- */

func (obj KmerContextCounts) Add(kmer string, context byte, ok bool) {
  obj.Counts[kmer] += 1
  if ok {
    m, found := obj.Contexts[kmer]
    if !found {
      m = make(map[byte]int)
      obj.Contexts[kmer] = m
    }
    m[context] += 1
  }
}

func (obj KmerContextCounts) CountSequence(sequence []byte) {
  for it := NewKmerContextIterator(sequence, obj.K); it.Ok(); it.Next() {
    context, ok := it.GetContext()
    obj.Add(it.GetKmer(), context, ok)
  }
}

func (obj KmerContextCounts) CountStringSet(ss OrderedStringSet) {
  for _, name := range ss.Seqnames {
    obj.CountSequence(ss.Sequences[name])
  }
}

/* -------------------------------------------------------------------------- */

// Merge statistics computed independently, e.g. one partial result per
// sequence, into a single object. Matching keys are summed, which makes
// merging commutative and associative. The receiver and all arguments are
// left unchanged.
func (obj KmerContextCounts) Merge(args ...KmerContextCounts) KmerContextCounts {
  r, _ := NewKmerContextCounts(obj.K)

  for _, counts := range append([]KmerContextCounts{obj}, args...) {
    if counts.K != obj.K {
      panic(fmt.Sprintf("cannot merge k-mer statistics of different lengths `%d' and `%d'", obj.K, counts.K))
    }
    for kmer, c := range counts.Counts {
      r.Counts[kmer] += c
    }
    for kmer, m := range counts.Contexts {
      t, found := r.Contexts[kmer]
      if !found {
        t = make(map[byte]int)
        r.Contexts[kmer] = t
      }
      for context, c := range m {
        t[context] += c
      }
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

type KmerContextCountsIterator struct {
  counts KmerContextCounts
  kmers  []string
  i      int
}

// Iterate over all observed k-mers in lexicographic order.
func (obj KmerContextCounts) Iterate() KmerContextCountsIterator {
  kmers := make([]string, 0, len(obj.Counts))
  for kmer, _ := range obj.Counts {
    kmers = append(kmers, kmer)
  }
  sort.Strings(kmers)
  return KmerContextCountsIterator{obj, kmers, 0}
}

func (obj KmerContextCountsIterator) Ok() bool {
  return obj.i < len(obj.kmers)
}

func (obj KmerContextCountsIterator) GetKmer() string {
  return obj.kmers[obj.i]
}

func (obj KmerContextCountsIterator) GetCount() int {
  return obj.counts.Counts[obj.kmers[obj.i]]
}

// Observed context characters of the current k-mer in lexicographic order.
func (obj KmerContextCountsIterator) GetContexts() []byte {
  m := obj.counts.Contexts[obj.kmers[obj.i]]
  r := make([]byte, 0, len(m))
  for context, _ := range m {
    r = append(r, context)
  }
  sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
  return r
}

func (obj *KmerContextCountsIterator) Next() {
  obj.i++
}
