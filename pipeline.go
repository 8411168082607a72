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

package peakwindows

/* -------------------------------------------------------------------------- */

import "context"
import "fmt"
import "os"

/* -------------------------------------------------------------------------- */

type PipelineConfig struct {
  WindowSize int
  MinScore   float64
  // optional chromosome sizes, windows outside of chromosomes are dropped
  Genome     *Genome
  // optional file name for a gap size histogram
  GapPlot    string
  GapBins    int
}

func DefaultPipelineConfig() PipelineConfig {
  return PipelineConfig{WindowSize: 150, MinScore: 50, GapBins: 50}
}

/* -------------------------------------------------------------------------- */

// Names of all files produced for a narrowPeak file.
type Outputs struct {
  ChromIndex  string
  Bed         string
  Fasta       string
  DNA         string
  NegBed      string
  NegFasta    string
  NegDNA      string
}

func OutputFiles(prefix string) Outputs {
  return Outputs{
    ChromIndex: prefix + "_chr_index.txt",
    Bed       : prefix + "_.bed",
    Fasta     : prefix + ".fastq",
    DNA       : prefix + "_DNA.txt",
    NegBed    : prefix + "_neg.bed",
    NegFasta  : prefix + "_neg.fastq",
    NegDNA    : prefix + "_DNA_neg.txt" }
}

type Summary struct {
  Peaks    int
  Positive int
  Negative int
}

/* -------------------------------------------------------------------------- */

type Pipeline struct {
  Config    PipelineConfig
  Extractor RegionExtractor
  Filter    LineFilter
  Logger    Logger
}

func NewPipeline(config PipelineConfig, extractor RegionExtractor, filter LineFilter) Pipeline {
  return Pipeline{Config: config, Extractor: extractor, Filter: filter}
}

/* -------------------------------------------------------------------------- */

func (p Pipeline) step(msg string, f func() error) error {
  p.Logger.Printf(1, "%s... ", msg)
  if err := f(); err != nil {
    p.Logger.Printf(1, "failed\n")
    return fmt.Errorf("%s: %w", msg, err)
  }
  p.Logger.Printf(1, "done\n")
  return nil
}

func (p Pipeline) sequences(ctx context.Context, windows Windows, reference, bed, fasta, dna string) error {
  if err := p.step(fmt.Sprintf("Exporting %d windows to `%s'", windows.Length(), bed), func() error {
    return windows.ExportBed3(bed, false)
  }); err != nil {
    return err
  }
  if err := p.step(fmt.Sprintf("Extracting sequences to `%s'", fasta), func() error {
    return p.Extractor.Extract(ctx, bed, reference, fasta)
  }); err != nil {
    return err
  }
  return p.step(fmt.Sprintf("Writing sequence lines to `%s'", dna), func() error {
    return p.Filter.Filter(ctx, fasta, dna)
  })
}

// Convert a narrowPeak file into positive and negative windows and their
// sequences. Output files are named after narrowPeakFile (see OutputFiles).
func (p Pipeline) Run(ctx context.Context, narrowPeakFile, reference string) (Summary, error) {
  summary := Summary{}
  outputs := OutputFiles(narrowPeakFile)

  if p.Extractor == nil || p.Filter == nil {
    return summary, fmt.Errorf("pipeline requires a region extractor and a line filter")
  }
  if _, err := os.Stat(narrowPeakFile); err != nil {
    return summary, fmt.Errorf("invalid narrowPeak file: %w", err)
  }
  peaks := NarrowPeaks{}
  if err := p.step(fmt.Sprintf("Reading peaks from `%s'", narrowPeakFile), func() error {
    return peaks.Import(narrowPeakFile)
  }); err != nil {
    return summary, err
  }
  summary.Peaks = peaks.Length()

  index, err := NewChromIndex(peaks.Seqnames)
  if err != nil {
    return summary, err
  }
  if err := p.step(fmt.Sprintf("Exporting chromosome index to `%s'", outputs.ChromIndex), func() error {
    return index.Export(outputs.ChromIndex)
  }); err != nil {
    return summary, err
  }
  if p.Config.GapPlot != "" {
    if err := p.step(fmt.Sprintf("Saving gap histogram to `%s'", p.Config.GapPlot), func() error {
      return SaveGapHistogram(p.Config.GapPlot, Gaps(peaks, index), p.Config.WindowSize, p.Config.GapBins)
    }); err != nil {
      return summary, err
    }
  }
  // positive windows
  positive, err := PositiveWindows(peaks, p.Config.WindowSize, p.Config.MinScore)
  if err != nil {
    return summary, err
  }
  positive = p.restrict(positive)
  summary.Positive = positive.Length()

  if err := p.sequences(ctx, positive, reference, outputs.Bed, outputs.Fasta, outputs.DNA); err != nil {
    return summary, err
  }
  // negative windows
  negative, err := NegativeWindows(peaks, index, p.Config.WindowSize)
  if err != nil {
    return summary, err
  }
  negative = p.restrict(negative)
  summary.Negative = negative.Length()

  if err := p.sequences(ctx, negative, reference, outputs.NegBed, outputs.NegFasta, outputs.NegDNA); err != nil {
    return summary, err
  }
  return summary, nil
}

func (p Pipeline) restrict(w Windows) Windows {
  if p.Config.Genome == nil {
    if m := countNegative(w); m > 0 {
      p.Logger.Printf(0, "Warning: %d windows start before position 0, provide chromosome sizes to drop them\n", m)
    }
    return w
  }
  n := w.Length()
  w  = w.Within(*p.Config.Genome)
  if m := n - w.Length(); m > 0 {
    p.Logger.Printf(1, "Dropped %d windows outside of chromosome bounds\n", m)
  }
  return w
}

func countNegative(w Windows) int {
  m := 0
  for i := 0; i < w.Length(); i++ {
    if w.Ranges[i].From < 0 {
      m++
    }
  }
  return m
}
