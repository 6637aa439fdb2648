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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "sort"
import   "strconv"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmercontext"
import   "github.com/pbenner/kmercontext/lib/progress"
import   "github.com/pbenner/threadpool"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  PlotFile string
  Threads  int
  Verbose  int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importFasta(config Config, filename string) OrderedStringSet {
  ss := EmptyOrderedStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := ss.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return ss
}

func exportReport(config Config, counts KmerContextCounts, filename string) {
  PrintStderr(config, 1, "Writing report `%s'... ", filename)
  if err := counts.ExportReport(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func saveCountsPlot(config Config, filename string, counts KmerContextCounts) {
  if counts.Len() == 0 {
    PrintStderr(config, 1, "No k-mers observed, skipping frequency plot\n")
    return
  }
  values := make([]int, 0, counts.Len())
  for it := counts.Iterate(); it.Ok(); it.Next() {
    values = append(values, it.GetCount())
  }
  sort.Sort(sort.Reverse(sort.IntSlice(values)))

  xy := make(plotter.XYs, len(values))
  for i := 0; i < len(values); i++ {
    xy[i].X = float64(i)+1
    xy[i].Y = float64(values[i])
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "rank"
  p.Y.Label.Text = "frequency"
  p.X.Scale = plot.LogScale{}
  p.Y.Scale = plot.LogScale{}
  p.X.Tick.Marker = plot.LogTicks{}
  p.Y.Tick.Marker = plot.LogTicks{}

  if err := plotutil.AddLines(p, xy); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote k-mer frequency plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func countSequences(config Config, ss OrderedStringSet, k int) KmerContextCounts {
  n := len(ss.Seqnames)

  if config.Threads <= 1 {
    counts, err := NewKmerContextCounts(k)
    if err != nil {
      log.Fatal(err)
    }
    for i, name := range ss.Seqnames {
      counts.CountSequence(ss.Sequences[name])
      if config.Verbose >= 2 {
        progress.New(n, 100).PrintStderr(i+1)
      }
    }
    return counts
  }
  pool := threadpool.New(config.Threads, 100*config.Threads)

  // one partial result per thread, merged once all jobs are done
  partial := make([]KmerContextCounts, pool.NumberOfThreads())
  for i := 0; i < pool.NumberOfThreads(); i++ {
    if r, err := NewKmerContextCounts(k); err != nil {
      log.Fatal(err)
    } else {
      partial[i] = r
    }
  }
  sequences := make([][]byte, n)
  for i, name := range ss.Seqnames {
    sequences[i] = ss.Sequences[name]
  }
  pool.RangeJob(0, n, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    partial[pool.GetThreadId()].CountSequence(sequences[i])
    return nil
  })
  return partial[0].Merge(partial[1:]...)
}

/* -------------------------------------------------------------------------- */

func countKmerContexts(config Config, filenameInput, filenameOutput string, k int) {
  ss     := importFasta(config, filenameInput)
  counts := countSequences(config, ss, k)

  exportReport(config, counts, filenameOutput)

  if config.PlotFile != "" {
    saveCountsPlot(config, config.PlotFile, counts)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optPlotCounts := options. StringLong("plot-counts",  0 , "", "save a rank/frequency plot of the k-mer counts [pdf]")
  optThreads    := options.    IntLong("threads",      0 ,  1, "number of threads [default: 1]")
  optVerbose    := options.CounterLong("verbose",     'v',     "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',     "print help")

  options.SetParameters("<INPUT.fasta> <OUTPUT.report> <K>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.PlotFile = *optPlotCounts
  config.Threads  = *optThreads
  config.Verbose  = *optVerbose
  // check required arguments
  k, err := strconv.ParseInt(options.Args()[2], 10, 64); if err != nil {
    log.Fatalf("parsing k-mer length failed: `%s' is not an integer", options.Args()[2])
  }
  if k < 1 {
    log.Fatalf("invalid k-mer length `%d'", k)
  }
  if config.Threads < 1 {
    config.Threads = 1
  }
  countKmerContexts(config, options.Args()[0], options.Args()[1], int(k))
}
