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

import "bufio"
import "bytes"
import "context"
import "fmt"
import "io"
import "os"

import "github.com/biogo/hts/fai"
import "github.com/pbenner/threadpool"

import "github.com/pbenner/peakwindows/lib/progress"

/* -------------------------------------------------------------------------- */

// In-process region extraction from a FASTA file. The faidx index
// `<reference>.fai' is used if it exists, otherwise it is computed in memory.
// Regions are fetched by Threads workers.
type FaiExtractor struct {
  Threads  int
  Progress bool
  Logger   Logger
}

func (e FaiExtractor) Extract(ctx context.Context, bedFile, reference, outFile string) error {
  regions := GRanges{}
  if err := regions.ImportBed3(bedFile); err != nil {
    return fmt.Errorf("reading bed file `%s' failed: %w", bedFile, err)
  }
  f, err := os.Open(reference)
  if err != nil {
    return err
  }
  defer f.Close()

  idx, err := importFaiIndex(reference, f)
  if err != nil {
    return fmt.Errorf("indexing `%s' failed: %w", reference, err)
  }
  sequences, err := e.fetch(ctx, fai.NewFile(f, idx), idx, regions)
  if err != nil {
    return err
  }
  var buffer bytes.Buffer
  if err := writeRegions(&buffer, regions, sequences); err != nil {
    return err
  }
  return writeFile(outFile, &buffer, false)
}

func (e FaiExtractor) fetch(ctx context.Context, file *fai.File, idx fai.Index, regions GRanges) ([][]byte, error) {
  threads := e.Threads
  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  defer pool.Stop()
  g    := pool.NewJobGroup()

  var p *progress.Progress
  if e.Progress {
    p = progress.New(regions.Length(), 100, e.Logger.writer())
  }
  sequences := make([][]byte, regions.Length())

  if err := pool.AddRangeJob(0, regions.Length(), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    if err := ctx.Err(); err != nil {
      return err
    }
    seq, err := fetchRegion(file, idx, regions.Seqnames[i], regions.Ranges[i])
    if err != nil {
      return err
    }
    sequences[i] = seq
    if p != nil {
      p.Step()
    }
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(g); err != nil {
    return nil, err
  }
  return sequences, nil
}

func fetchRegion(file *fai.File, idx fai.Index, seqname string, r Range) ([]byte, error) {
  record, ok := idx[seqname]
  if !ok {
    return nil, fmt.Errorf("sequence `%s' not found in reference", seqname)
  }
  if r.From < 0 || r.To > record.Length {
    return nil, fmt.Errorf("region `%s:%d-%d' is out of bounds (sequence length is %d)", seqname, r.From, r.To, record.Length)
  }
  seq, err := file.SeqRange(seqname, r.From, r.To)
  if err != nil {
    return nil, err
  }
  return io.ReadAll(seq)
}

func importFaiIndex(reference string, r io.Reader) (fai.Index, error) {
  if f, err := os.Open(reference + ".fai"); err == nil {
    defer f.Close()
    return fai.ReadFrom(f)
  }
  return fai.NewIndex(r)
}

// Write regions in the format of `bedtools getfasta', one line per sequence.
func writeRegions(w io.Writer, regions GRanges, sequences [][]byte) error {
  writer := bufio.NewWriter(w)
  for i := 0; i < regions.Length(); i++ {
    fmt.Fprintf(writer, ">%s:%d-%d\n", regions.Seqnames[i], regions.Ranges[i].From, regions.Ranges[i].To)
    writer.Write(sequences[i])
    writer.WriteString("\n")
  }
  return writer.Flush()
}
