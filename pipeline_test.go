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

import   "bytes"
import   "context"
import   "errors"
import   "fmt"
import   "io/fs"
import   "os"
import   "path/filepath"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

type mockExtractor struct {
  calls *[]string
  fail  error
}

func (m mockExtractor) Extract(ctx context.Context, bedFile, reference, outFile string) error {
  *m.calls = append(*m.calls, bedFile)
  if m.fail != nil {
    return m.fail
  }
  regions := GRanges{}
  if err := regions.ImportBed3(bedFile); err != nil {
    return err
  }
  var buffer bytes.Buffer
  for i := 0; i < regions.Length(); i++ {
    fmt.Fprintf(&buffer, ">%s:%d-%d\n%s\n", regions.Seqnames[i], regions.Ranges[i].From, regions.Ranges[i].To,
      strings.Repeat("N", regions.Ranges[i].Width()))
  }
  return os.WriteFile(outFile, buffer.Bytes(), 0666)
}

type emptyExtractor struct{}

func (emptyExtractor) Extract(ctx context.Context, bedFile, reference, outFile string) error {
  return os.WriteFile(outFile, nil, 0666)
}

func writeTestPeaks(t *testing.T, peaks string) string {
  filename := filepath.Join(t.TempDir(), "test.narrowPeak")
  if err := os.WriteFile(filename, []byte(peaks), 0666); err != nil {
    t.Fatal(err)
  }
  return filename
}

func readTestFile(t *testing.T, filename string) string {
  b, err := os.ReadFile(filename)
  if err != nil {
    t.Fatal(err)
  }
  return string(b)
}

/* -------------------------------------------------------------------------- */

func TestPipeline1(t *testing.T) {
  calls    := []string{}
  filename := writeTestPeaks(t, testPeaks)

  var log bytes.Buffer
  pipeline := NewPipeline(DefaultPipelineConfig(), mockExtractor{calls: &calls}, EvenLineFilter{})
  pipeline.Logger = Logger{Verbose: 1, Writer: &log}

  summary, err := pipeline.Run(context.Background(), filename, "genome.fa")
  if err != nil {
    t.Fatal(err)
  }
  if summary != (Summary{Peaks: 6, Positive: 3, Negative: 3}) {
    t.Errorf("unexpected summary: %+v", summary)
  }
  outputs := OutputFiles(filename)
  if len(calls) != 2 || calls[0] != outputs.Bed || calls[1] != outputs.NegBed {
    t.Errorf("unexpected extractor calls: %v", calls)
  }
  if s := readTestFile(t, outputs.ChromIndex); s != "chr1 , 0 , 3\nchr2 , 4 , 5\n" {
    t.Errorf("unexpected chromosome index: %q", s)
  }
  if s := readTestFile(t, outputs.Bed); s != "chr1\t1076\t1226\nchr1\t2646\t2796\nchr2\t5126\t5276\n" {
    t.Errorf("unexpected positive windows: %q", s)
  }
  if s := readTestFile(t, outputs.NegBed); s != "chr1\t1475\t1625\nchr1\t2175\t2325\nchr2\t2625\t2775\n" {
    t.Errorf("unexpected negative windows: %q", s)
  }
  for _, f := range []string{outputs.DNA, outputs.NegDNA} {
    lines := strings.Split(strings.TrimSpace(readTestFile(t, f)), "\n")
    if len(lines) != 3 {
      t.Errorf("expected 3 sequences in `%s'", f)
    }
    for _, line := range lines {
      if line != strings.Repeat("N", 150) {
        t.Errorf("unexpected sequence line in `%s': %q", f, line)
      }
    }
  }
  if !strings.Contains(log.String(), "done") {
    t.Error("expected log messages")
  }
}

func TestPipeline2(t *testing.T) {
  calls    := []string{}
  filename := writeTestPeaks(t, testPeaks)

  config := DefaultPipelineConfig()
  genome := NewGenome([]string{"chr1"}, []int{2500})
  config.Genome = &genome

  summary, err := NewPipeline(config, mockExtractor{calls: &calls}, EvenLineFilter{}).Run(context.Background(), filename, "genome.fa")
  if err != nil {
    t.Fatal(err)
  }
  if summary != (Summary{Peaks: 6, Positive: 1, Negative: 2}) {
    t.Errorf("unexpected summary: %+v", summary)
  }
}

func TestPipeline3(t *testing.T) {
  calls := []string{}
  fail  := &ToolError{Tool: "bedtools", Err: ErrToolNotFound}

  filename := writeTestPeaks(t, testPeaks)
  _, err := NewPipeline(DefaultPipelineConfig(), mockExtractor{calls: &calls, fail: fail}, EvenLineFilter{}).Run(context.Background(), filename, "genome.fa")
  if !errors.Is(err, ErrToolNotFound) {
    t.Errorf("unexpected error: %v", err)
  }
  // pipeline must stop at the first failure
  if len(calls) != 1 {
    t.Errorf("unexpected extractor calls: %v", calls)
  }
  if _, err := os.Stat(OutputFiles(filename).NegBed); err == nil {
    t.Error("negative windows should not have been exported")
  }
}

func TestPipeline4(t *testing.T) {
  calls    := []string{}
  pipeline := NewPipeline(DefaultPipelineConfig(), mockExtractor{calls: &calls}, EvenLineFilter{})

  _, err := pipeline.Run(context.Background(), filepath.Join(t.TempDir(), "missing.narrowPeak"), "genome.fa")
  if !errors.Is(err, fs.ErrNotExist) {
    t.Errorf("unexpected error: %v", err)
  }
  filename := writeTestPeaks(t,
    "chr1\t1000\t1300\tpeak1\t80\t.\t5\t0.01\t0.01\t150\n" +
    "chr2\t1000\t1300\tpeak2\t80\t.\t5\t0.01\t0.01\t150\n" +
    "chr1\t5000\t5300\tpeak3\t80\t.\t5\t0.01\t0.01\t150\n")
  _, err = pipeline.Run(context.Background(), filename, "genome.fa")
  e := &UnsortedError{}
  if !errors.As(err, &e) {
    t.Errorf("unexpected error: %v", err)
  }
  filename = writeTestPeaks(t, "chr1\t1000\t1300\tpeak1\n")
  _, err = pipeline.Run(context.Background(), filename, "genome.fa")
  s := &SchemaError{}
  if !errors.As(err, &s) {
    t.Errorf("unexpected error: %v", err)
  }
  if len(calls) != 0 {
    t.Errorf("unexpected extractor calls: %v", calls)
  }
}

func TestPipeline5(t *testing.T) {
  if _, err := (Pipeline{Config: DefaultPipelineConfig()}).Run(context.Background(), "x", "y"); err == nil {
    t.Error("expected error for missing collaborators")
  }
}

func TestPipeline6(t *testing.T) {
  filename := writeTestPeaks(t,
    "chr1\t0\t300\tpeak1\t80\t.\t5\t0.01\t0.01\t10\n" +
    "chr1\t1000\t1300\tpeak2\t80\t.\t5\t0.01\t0.01\t150\n")

  var log bytes.Buffer
  pipeline := NewPipeline(DefaultPipelineConfig(), emptyExtractor{}, EvenLineFilter{})
  pipeline.Logger = Logger{Writer: &log}

  summary, err := pipeline.Run(context.Background(), filename, "genome.fa")
  if err != nil {
    t.Fatal(err)
  }
  if summary.Positive != 2 {
    t.Errorf("unexpected summary: %+v", summary)
  }
  if !strings.Contains(log.String(), "1 windows start before position 0") {
    t.Errorf("expected warning but got %q", log.String())
  }
  // chromosome sizes remove the window
  log.Reset()
  genome := NewGenome([]string{"chr1"}, []int{10000})
  pipeline.Config.Genome = &genome
  if summary, err = pipeline.Run(context.Background(), filename, "genome.fa"); err != nil {
    t.Fatal(err)
  }
  if summary.Positive != 1 || strings.Contains(log.String(), "Warning") {
    t.Errorf("unexpected result: %+v %q", summary, log.String())
  }
}
