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
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

const narrowPeakColumns = 10

// Peaks called by MACS in narrowPeak format. Summit is the offset of the
// peak summit relative to the start of the peak.
type NarrowPeaks struct {
  GRanges
  Name        []string
  Score       []float64
  Strand      []byte
  SignalValue []float64
  Pvalue      []float64
  Qvalue      []float64
  Summit      []int
}

/* -------------------------------------------------------------------------- */

// Absolute position of the summit of the i-th peak.
func (peaks NarrowPeaks) AbsSummit(i int) int {
  return peaks.Ranges[i].From + peaks.Summit[i]
}

func (peaks *NarrowPeaks) push(fields []string, line int) error {
  parseInt := func(j int, column string) (int, error) {
    v, err := strconv.ParseInt(fields[j], 10, 64)
    if err != nil {
      return 0, &SchemaError{Line: line, Columns: len(fields), Column: column, Err: err}
    }
    return int(v), nil
  }
  parseFloat := func(j int, column string) (float64, error) {
    v, err := strconv.ParseFloat(fields[j], 64)
    if err != nil {
      return 0, &SchemaError{Line: line, Columns: len(fields), Column: column, Err: err}
    }
    return v, nil
  }
  from,   err := parseInt  (1, "start");       if err != nil { return err }
  to,     err := parseInt  (2, "end");         if err != nil { return err }
  score,  err := parseFloat(4, "score");       if err != nil { return err }
  signal, err := parseFloat(6, "signalValue"); if err != nil { return err }
  pvalue, err := parseFloat(7, "pValue");      if err != nil { return err }
  qvalue, err := parseFloat(8, "qValue");      if err != nil { return err }
  summit, err := parseInt  (9, "peak");        if err != nil { return err }

  if from > to {
    return &SchemaError{Line: line, Columns: len(fields), Column: "end",
      Err: fmt.Errorf("end %d is smaller than start %d", to, from)}
  }
  strand := byte('*')
  switch fields[5] {
  case "+": strand = '+'
  case "-": strand = '-'
  case ".", "*":
  default:
    return &SchemaError{Line: line, Columns: len(fields), Column: "strand",
      Err: fmt.Errorf("invalid strand `%s'", fields[5])}
  }
  peaks.Push(fields[0], from, to)
  peaks.Name        = append(peaks.Name,        fields[3])
  peaks.Score       = append(peaks.Score,       score)
  peaks.Strand      = append(peaks.Strand,      strand)
  peaks.SignalValue = append(peaks.SignalValue, signal)
  peaks.Pvalue      = append(peaks.Pvalue,      pvalue)
  peaks.Qvalue      = append(peaks.Qvalue,      qvalue)
  peaks.Summit      = append(peaks.Summit,      summit)
  return nil
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read a headerless narrowPeak table with ten tab separated columns. The
// whole table is kept in memory.
func (peaks *NarrowPeaks) Read(r io.Reader) error {
  *peaks = NarrowPeaks{}

  scanner := bufio.NewScanner(r)
  for line := 1; scanner.Scan(); line++ {
    text := strings.TrimRight(scanner.Text(), "\r")
    if len(strings.TrimSpace(text)) == 0 {
      continue
    }
    if text[0] == '#' || strings.HasPrefix(text, "track") || strings.HasPrefix(text, "browser") {
      continue
    }
    fields := strings.Split(text, "\t")
    if len(fields) != narrowPeakColumns {
      return &SchemaError{Line: line, Columns: len(fields)}
    }
    if err := peaks.push(fields, line); err != nil {
      return err
    }
  }
  return scanner.Err()
}

func (peaks *NarrowPeaks) Import(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  if err := peaks.Read(f); err != nil {
    return fmt.Errorf("reading narrowPeak file `%s' failed: %w", filename, err)
  }
  return nil
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (peaks NarrowPeaks) String() string {
  var buffer bytes.Buffer
  const n int = 10

  printRow := func(i int) {
    buffer.WriteString(
      fmt.Sprintf("\n%10d %10s [%10d, %10d) %10s | %8.1f %c %10d",
        i+1,
        peaks.Seqnames[i],
        peaks.Ranges[i].From,
        peaks.Ranges[i].To,
        peaks.Name[i],
        peaks.Score[i],
        peaks.Strand[i],
        peaks.Summit[i]))
  }
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %25s %10s | %8s %c %10s", "", "seqnames", "ranges", "name", "score", 's', "summit"))

  if peaks.Length() <= n+1 {
    for i := 0; i < peaks.Length(); i++ {
      printRow(i)
    }
  } else {
    for i := 0; i < n/2; i++ {
      printRow(i)
    }
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10s %25s", "", "...", "..."))
    for i := peaks.Length() - n/2; i < peaks.Length(); i++ {
      printRow(i)
    }
  }
  return buffer.String()
}
