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

import   "errors"
import   "io/fs"
import   "path/filepath"
import   "testing"

import . "github.com/pbenner/peakwindows"

/* -------------------------------------------------------------------------- */

func TestCollaborators(t *testing.T) {
  config := Config{Extractor: "FAI", LineFilter: "builtin", Threads: 2}

  if e, err := newExtractor(config); err != nil {
    t.Error(err)
  } else if f, ok := e.(FaiExtractor); !ok || f.Threads != 2 {
    t.Errorf("unexpected extractor: %#v", e)
  }
  if f, err := newLineFilter(config); err != nil {
    t.Error(err)
  } else if _, ok := f.(EvenLineFilter); !ok {
    t.Errorf("unexpected line filter: %#v", f)
  }
  config.Extractor  = "bedtools"
  config.Bedtools   = "/opt/bin/bedtools"
  config.LineFilter = "awk"
  if e, _ := newExtractor(config); e != (BedtoolsExtractor{Path: "/opt/bin/bedtools"}) {
    t.Errorf("unexpected extractor: %#v", e)
  }
  if f, _ := newLineFilter(config); f != (AwkFilter{}) {
    t.Errorf("unexpected line filter: %#v", f)
  }
  config.Extractor  = "samtools"
  config.LineFilter = "sed"
  if _, err := newExtractor(config); err == nil {
    t.Error("expected error for invalid extractor")
  }
  if _, err := newLineFilter(config); err == nil {
    t.Error("expected error for invalid line filter")
  }
}

func TestImportGenome(t *testing.T) {
  if g, err := importGenome(Config{}); err != nil || g != nil {
    t.Error("test failed")
  }
  if _, err := importGenome(Config{Genome: "/no/such/genome.sizes"}); err == nil {
    t.Error("expected error for missing genome file")
  }
}

func TestCheckConfig(t *testing.T) {
  config := Config{WindowSize: 150, Threads: 1}
  if err := checkConfig(config); err != nil {
    t.Error(err)
  }
  for _, c := range []Config{
    {WindowSize:   0, Threads: 1},
    {WindowSize: 150, Threads: 0},
    {WindowSize: 150, Threads: 1, Genome: "hg19.chrom.sizes", UCSCGenome: "hg19"} } {
    if err := checkConfig(c); err == nil {
      t.Errorf("expected error for config %+v", c)
    }
  }
}

func TestMissingInput(t *testing.T) {
  dir    := t.TempDir()
  config := Config{WindowSize: 150, MinScore: 50, Extractor: "fai", LineFilter: "builtin", Threads: 1}

  err := narrowPeakToSequences(config, filepath.Join(dir, "missing.narrowPeak"), filepath.Join(dir, "genome.fa"))
  if !errors.Is(err, fs.ErrNotExist) {
    t.Errorf("unexpected error: %v", err)
  }
  config.Extractor = "samtools"
  if err := narrowPeakToSequences(config, filepath.Join(dir, "missing.narrowPeak"), filepath.Join(dir, "genome.fa")); err == nil {
    t.Error("expected error for invalid extractor")
  }
}
