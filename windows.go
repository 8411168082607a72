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

import "fmt"

/* -------------------------------------------------------------------------- */

// Fixed width windows derived from a peak table. Origin holds the row of the
// peak each window was computed from.
type Windows struct {
  GRanges
  Origin []int
}

func (w *Windows) push(seqname string, from, to, origin int) {
  w.Push(seqname, from, to)
  w.Origin = append(w.Origin, origin)
}

func (w Windows) Subset(indices []int) Windows {
  origin := make([]int, len(indices))
  for i, j := range indices {
    origin[i] = w.Origin[j]
  }
  return Windows{w.GRanges.Subset(indices), origin}
}

/* -------------------------------------------------------------------------- */

// Windows of width windowSize placed on the summits of all peaks that are
// wider than windowSize and score above minScore. The summit ends up at
// offset windowSize/2-1 of the window, which is not the exact center for
// even window sizes.
func PositiveWindows(peaks NarrowPeaks, windowSize int, minScore float64) (Windows, error) {
  if windowSize <= 0 {
    return Windows{}, fmt.Errorf("invalid window size %d", windowSize)
  }
  w := Windows{}
  for i := 0; i < peaks.Length(); i++ {
    if peaks.Ranges[i].Width() <= windowSize {
      continue
    }
    if peaks.Score[i] <= minScore {
      continue
    }
    from := peaks.AbsSummit(i) - (windowSize/2 - 1)
    w.push(peaks.Seqnames[i], from, from+windowSize, i)
  }
  return w, nil
}

// Windows of width windowSize centered on gaps between consecutive peaks of
// the same chromosome. Only gaps larger than twice the window size receive a
// window, so that it never touches one of the flanking peaks. At most one
// window is emitted per peak row, ordered by row.
func NegativeWindows(peaks NarrowPeaks, index ChromIndex, windowSize int) (Windows, error) {
  if windowSize <= 0 {
    return Windows{}, fmt.Errorf("invalid window size %d", windowSize)
  }
  if err := index.Check(peaks.Seqnames); err != nil {
    return Windows{}, err
  }
  w := Windows{}
  for _, e := range index {
    for j := e.First; j < e.Last; j++ {
      left  := peaks.Ranges[j].To
      right := peaks.Ranges[j+1].From
      gap   := right - left
      if gap <= 2*windowSize {
        continue
      }
      from := left + gap/2 - windowSize/2
      w.push(peaks.Seqnames[j], from, from+windowSize, j)
    }
  }
  return w, nil
}

// Sizes of all gaps between consecutive peaks of the same chromosome.
// Overlapping peaks give negative sizes.
func Gaps(peaks NarrowPeaks, index ChromIndex) []int {
  gaps := []int{}
  for _, e := range index {
    for j := e.First; j < e.Last && j+1 < peaks.Length(); j++ {
      gaps = append(gaps, peaks.Ranges[j+1].From - peaks.Ranges[j].To)
    }
  }
  return gaps
}

/* -------------------------------------------------------------------------- */

// Drop all windows that do not lie within the chromosomes of the genome.
func (w Windows) Within(genome Genome) Windows {
  indices := []int{}
  for i := 0; i < w.Length(); i++ {
    n, err := genome.SeqLength(w.Seqnames[i])
    if err != nil {
      continue
    }
    if w.Ranges[i].From < 0 || w.Ranges[i].To > n {
      continue
    }
    indices = append(indices, i)
  }
  return w.Subset(indices)
}
