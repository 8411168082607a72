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

import "github.com/biogo/biogo/io/featio"
import "github.com/biogo/biogo/io/featio/bed"

/* -------------------------------------------------------------------------- */

// Write GRanges object as bed file with three columns.
func (granges GRanges) WriteBed3(w io.Writer) error {
  writer := bufio.NewWriter(w)

  for i := 0; i < granges.Length(); i++ {
    fmt.Fprintf(writer,   "%s", granges.Seqnames[i])
    fmt.Fprintf(writer, "\t%d", granges.Ranges[i].From)
    fmt.Fprintf(writer, "\t%d", granges.Ranges[i].To)
    fmt.Fprintf(writer, "\n")
  }
  return writer.Flush()
}

func (granges GRanges) ExportBed3(filename string, compress bool) error {
  var buffer bytes.Buffer

  if err := granges.WriteBed3(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Read GRanges from a bed file with (at least) three columns.
func (granges *GRanges) ReadBed3(r io.Reader) error {
  reader, err := bed.NewReader(r, 3)
  if err != nil {
    return err
  }
  result  := GRanges{}
  scanner := featio.NewScanner(reader)
  for scanner.Next() {
    f := scanner.Feat().(*bed.Bed3)
    if f.ChromStart > f.ChromEnd {
      return fmt.Errorf("invalid bed entry `%s:%d-%d'", f.Chrom, f.ChromStart, f.ChromEnd)
    }
    result.Push(f.Chrom, f.ChromStart, f.ChromEnd)
  }
  if err := scanner.Error(); err != nil {
    return err
  }
  *granges = result
  return nil
}

func (granges *GRanges) ImportBed3(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return granges.ReadBed3(f)
}
