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

// Rows First to Last (inclusive) of a peak table that belong to Seqname.
type ChromIndexEntry struct {
  Seqname string
  First   int
  Last    int
}

type ChromIndex []ChromIndexEntry

/* -------------------------------------------------------------------------- */

// Compute the row ranges of contiguous chromosome runs in a single pass. The
// table must be grouped by chromosome, a chromosome that appears in two
// separate runs is reported as *UnsortedError.
func NewChromIndex(seqnames []string) (ChromIndex, error) {
  index := ChromIndex{}
  if len(seqnames) == 0 {
    return index, nil
  }
  seen  := map[string]int{seqnames[0]: 0}
  first := 0
  for i := 1; i < len(seqnames); i++ {
    if seqnames[i] == seqnames[i-1] {
      continue
    }
    if j, ok := seen[seqnames[i]]; ok {
      return nil, &UnsortedError{Seqname: seqnames[i], Row: i, FirstSeen: j}
    }
    seen[seqnames[i]] = i
    index = append(index, ChromIndexEntry{seqnames[i-1], first, i-1})
    first = i
  }
  // close final run
  index = append(index, ChromIndexEntry{seqnames[len(seqnames)-1], first, len(seqnames)-1})

  return index, nil
}

/* -------------------------------------------------------------------------- */

// Check that the index partitions the rows of a table with the given
// sequence names into contiguous runs, starting at row zero.
func (index ChromIndex) Check(seqnames []string) error {
  next := 0
  for i, e := range index {
    if e.First != next || e.Last < e.First || e.Last >= len(seqnames) {
      return fmt.Errorf("invalid chromosome index entry %d (%s , %d , %d) for a table with %d rows",
        i, e.Seqname, e.First, e.Last, len(seqnames))
    }
    for j := e.First; j <= e.Last; j++ {
      if seqnames[j] != e.Seqname {
        return fmt.Errorf("chromosome index entry %d claims row %d for `%s' but found `%s'",
          i, j, e.Seqname, seqnames[j])
      }
    }
    next = e.Last+1
  }
  return nil
}

/* i/o
 * -------------------------------------------------------------------------- */

func (index ChromIndex) WriteTable(w io.Writer) error {
  for _, e := range index {
    if _, err := fmt.Fprintf(w, "%s , %d , %d\n", e.Seqname, e.First, e.Last); err != nil {
      return err
    }
  }
  return nil
}

func (index ChromIndex) Export(filename string) error {
  var buffer bytes.Buffer
  if err := index.WriteTable(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, false)
}

// Parse a comma separated chromosome index as written by WriteTable.
func ReadChromIndex(r io.Reader) (ChromIndex, error) {
  index   := ChromIndex{}
  scanner := bufio.NewScanner(r)
  for line := 1; scanner.Scan(); line++ {
    if strings.TrimSpace(scanner.Text()) == "" {
      continue
    }
    fields := strings.Split(scanner.Text(), ",")
    if len(fields) != 3 {
      return nil, fmt.Errorf("line %d: expected 3 columns but found %d", line, len(fields))
    }
    first, err := strconv.Atoi(strings.TrimSpace(fields[1]))
    if err != nil {
      return nil, fmt.Errorf("line %d: %w", line, err)
    }
    last, err := strconv.Atoi(strings.TrimSpace(fields[2]))
    if err != nil {
      return nil, fmt.Errorf("line %d: %w", line, err)
    }
    index = append(index, ChromIndexEntry{strings.TrimSpace(fields[0]), first, last})
  }
  return index, scanner.Err()
}
