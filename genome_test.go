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

import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome := Genome{}
  // fai layout, additional columns are ignored
  if err := genome.Read(strings.NewReader("chr1\t1000\t6\t60\t61\nchr2\t500\t1029\t60\t61\n\n")); err != nil {
    t.Fatal(err)
  }
  if genome.Length() != 2 {
    t.Fatalf("expected 2 sequences but got %d", genome.Length())
  }
  if n, err := genome.SeqLength("chr2"); err != nil || n != 500 {
    t.Error("test failed")
  }
  if _, err := genome.SeqLength("chr3"); err == nil {
    t.Error("test failed")
  }
}

func TestGenome2(t *testing.T) {
  genome := Genome{}
  if err := genome.Read(strings.NewReader("chr1\n")); err == nil {
    t.Error("expected error for missing length column")
  }
  if err := genome.Read(strings.NewReader("chr1 abc\n")); err == nil {
    t.Error("expected error for invalid length")
  }
}

func TestGenome3(t *testing.T) {
  if _, err := importGenomeFromDB("no-such-driver", ""); err == nil {
    t.Error("expected error for unknown database driver")
  }
}
