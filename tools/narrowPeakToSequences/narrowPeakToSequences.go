/* Copyright (C) 2026 Philipp Benner
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

import   "context"
import   "fmt"
import   "log"
import   "os"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/peakwindows"

/* -------------------------------------------------------------------------- */

type Config struct {
  WindowSize  int
  MinScore    float64
  Extractor   string
  LineFilter  string
  Bedtools    string
  Awk         string
  Genome      string
  UCSCGenome  string
  GapPlot     string
  Threads     int
  Progress    bool
  Verbose     int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importGenome(config Config) (*Genome, error) {
  genome := Genome{}
  switch {
  case config.Genome != "":
    PrintStderr(config, 1, "Reading genome `%s'... ", config.Genome)
    if err := genome.Import(config.Genome); err != nil {
      PrintStderr(config, 1, "failed\n")
      return nil, err
    }
  case config.UCSCGenome != "":
    PrintStderr(config, 1, "Downloading chromosome sizes of `%s' from UCSC... ", config.UCSCGenome)
    g, err := ImportGenomeFromUCSC(config.UCSCGenome)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      return nil, err
    }
    genome = g
  default:
    return nil, nil
  }
  PrintStderr(config, 1, "done\n")
  return &genome, nil
}

func newExtractor(config Config) (RegionExtractor, error) {
  switch strings.ToLower(config.Extractor) {
  case "bedtools":
    return BedtoolsExtractor{Path: config.Bedtools}, nil
  case "fai":
    return FaiExtractor{
      Threads : config.Threads,
      Progress: config.Progress,
      Logger  : Logger{Verbose: config.Verbose} }, nil
  default:
    return nil, fmt.Errorf("invalid extractor: %s", config.Extractor)
  }
}

func newLineFilter(config Config) (LineFilter, error) {
  switch strings.ToLower(config.LineFilter) {
  case "awk":
    return AwkFilter{Path: config.Awk}, nil
  case "builtin":
    return EvenLineFilter{}, nil
  default:
    return nil, fmt.Errorf("invalid line filter: %s", config.LineFilter)
  }
}

/* -------------------------------------------------------------------------- */

func checkConfig(config Config) error {
  if config.WindowSize <= 0 {
    return fmt.Errorf("invalid window size: %d", config.WindowSize)
  }
  if config.Threads <= 0 {
    return fmt.Errorf("invalid number of threads: %d", config.Threads)
  }
  if config.Genome != "" && config.UCSCGenome != "" {
    return fmt.Errorf("options --genome and --ucsc-genome are mutually exclusive")
  }
  return nil
}

func narrowPeakToSequences(config Config, filenameIn, filenameRef string) error {
  if err := checkConfig(config); err != nil {
    return err
  }
  extractor, err := newExtractor(config)
  if err != nil {
    return err
  }
  filter, err := newLineFilter(config)
  if err != nil {
    return err
  }
  genome, err := importGenome(config)
  if err != nil {
    return err
  }
  c := DefaultPipelineConfig()
  c.WindowSize = config.WindowSize
  c.MinScore   = config.MinScore
  c.Genome     = genome
  c.GapPlot    = config.GapPlot

  pipeline := NewPipeline(c, extractor, filter)
  pipeline.Logger = Logger{Verbose: config.Verbose}

  summary, err := pipeline.Run(context.Background(), filenameIn, filenameRef)
  if err != nil {
    return err
  }
  PrintStderr(config, 1, "Converted %d peaks into %d positive and %d negative windows\n",
    summary.Peaks, summary.Positive, summary.Negative)
  return nil
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optWindowSize := options.    IntLong("window-size",  0 ,      150, "width of positive and negative windows [default: 150]")
  optMinScore   := options.    IntLong("min-score",    0 ,       50, "peaks must have a score larger than this value [default: 50]")
  optExtractor  := options. StringLong("extractor",    0 , "bedtools", "sequence extraction: bedtools [default] or fai")
  optLineFilter := options. StringLong("line-filter",  0 ,      "awk", "sequence line filter: awk [default] or builtin")
  optBedtools   := options. StringLong("bedtools",     0 , "bedtools", "path to the bedtools executable")
  optAwk        := options. StringLong("awk",          0 ,      "awk", "path to the awk executable")
  optGenome     := options. StringLong("genome",       0 ,         "", "chromosome sizes (chrom.sizes or .fai), drop windows outside of chromosomes; without a genome, windows close to chromosome starts may have negative coordinates")
  optUCSCGenome := options. StringLong("ucsc-genome",  0 ,         "", "download chromosome sizes of the given assembly from UCSC")
  optGapPlot    := options. StringLong("gap-plot",     0 ,         "", "save histogram of inter-peak gap sizes to file (pdf, png, svg)")
  optThreads    := options.    IntLong("threads",      0 ,          1, "number of threads used by the fai extractor")
  optProgress   := options.   BoolLong("progress",     0 ,             "print progress of the fai extractor")
  optHelp       := options.   BoolLong("help",        'h',             "print help")
  optVerbose    := options.CounterLong("verbose",     'v',             "be verbose")

  options.SetParameters("<PEAKS.narrowPeak> <GENOME.fa>\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.WindowSize = *optWindowSize
  config.MinScore   = float64(*optMinScore)
  config.Extractor  = *optExtractor
  config.LineFilter = *optLineFilter
  config.Bedtools   = *optBedtools
  config.Awk        = *optAwk
  config.Genome     = *optGenome
  config.UCSCGenome = *optUCSCGenome
  config.GapPlot    = *optGapPlot
  config.Threads    = *optThreads
  config.Progress   = *optProgress
  config.Verbose    = *optVerbose

  if err := checkConfig(config); err != nil {
    options.PrintUsage(os.Stderr)
    log.Fatal(err)
  }

  if err := narrowPeakToSequences(config, options.Args()[0], options.Args()[1]); err != nil {
    log.Fatal(err)
  }
}
