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

import "bytes"
import "fmt"

/* -------------------------------------------------------------------------- */

type GRanges struct {
  Seqnames []string
  Ranges   []Range
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewEmptyGRanges(n int) GRanges {
  return GRanges{make([]string, n), make([]Range, n)}
}

/* -------------------------------------------------------------------------- */

func (r *GRanges) Length() int {
  return len(r.Ranges)
}

func (r *GRanges) Push(seqname string, from, to int) {
  r.Seqnames = append(r.Seqnames, seqname)
  r.Ranges   = append(r.Ranges,   NewRange(from, to))
}

func (r *GRanges) Subset(indices []int) GRanges {
  result := NewEmptyGRanges(len(indices))
  for i, j := range indices {
    result.Seqnames[i] = r.Seqnames[j]
    result.Ranges  [i] = r.Ranges  [j]
  }
  return result
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (r GRanges) String() string {
  var buffer bytes.Buffer
  // number of lines to print
  const n int = 10

  printRow := func(i int) {
    buffer.WriteString(
      fmt.Sprintf("\n%10d %10s [%10d, %10d)", i+1, r.Seqnames[i], r.Ranges[i].From, r.Ranges[i].To))
  }
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %25s", "", "seqnames", "ranges"))

  if r.Length() <= n+1 {
    for i := 0; i < r.Length(); i++ {
      printRow(i)
    }
  } else {
    for i := 0; i < n/2; i++ {
      printRow(i)
    }
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10s %25s", "", "...", "..."))
    for i := r.Length() - n/2; i < r.Length(); i++ {
      printRow(i)
    }
  }
  return buffer.String()
}
