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

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Save a histogram of inter-peak gap sizes. The file format is determined
// by the extension of filename (pdf, png, svg, ...).
func SaveGapHistogram(filename string, gaps []int, windowSize, bins int) error {
  if len(gaps) == 0 {
    return fmt.Errorf("no gaps to plot")
  }
  values := make(plotter.Values, len(gaps))
  for i, g := range gaps {
    values[i] = float64(g)
  }
  h, err := plotter.NewHist(values, bins)
  if err != nil {
    return err
  }
  p := plot.New()
  p.Title.Text  = fmt.Sprintf("inter-peak gaps (negative windows require gap > %d)", 2*windowSize)
  p.X.Label.Text = "gap size [bp]"
  p.Y.Label.Text = "count"
  p.Add(h)

  return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
