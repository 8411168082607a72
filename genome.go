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
import "database/sql"
import "errors"
import "fmt"
import "io"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Structure containing chromosome sizes.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): Invalid parameters!")
  }
  return Genome{seqnames, lengths}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns an error if the chromosome
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, errors.New("sequence not found")
}

/* -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%10s %10s", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10d", genome.Seqnames[i], genome.Lengths[i]))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read chromosome sizes from a whitespace separated table where the first
// column is the name of the chromosome and the second column its length.
// Both UCSC chrom.sizes and faidx (.fai) files have this layout.
func (genome *Genome) Read(r io.Reader) error {
  seqnames := []string{}
  lengths  := []int{}

  scanner := bufio.NewScanner(r)
  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("line %d: invalid genome file", line)
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return fmt.Errorf("line %d: %w", line, err)
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *genome = NewGenome(seqnames, lengths)
  return nil
}

func (genome *Genome) Import(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return genome.Read(f)
}

// Download chromosome sizes of an assembly (e.g. hg19) from the public UCSC
// MySQL server.
func ImportGenomeFromUCSC(assembly string) (Genome, error) {
  return importGenomeFromDB("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.soe.ucsc.edu:3306)/%s", assembly))
}

func importGenomeFromDB(driver, dsn string) (Genome, error) {
  genome := Genome{}
  /* variables for storing a single database row */
  var i_seqname string
  var i_length  int

  seqnames := []string{}
  lengths  := []int{}

  /* open connection */
  db, err := sql.Open(driver, dsn)
  if err != nil {
    return genome, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return genome, err
  }
  /* receive data */
  rows, err := db.Query("SELECT chrom, size FROM chromInfo")
  if err != nil {
    return genome, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_seqname, &i_length); err != nil {
      return genome, err
    }
    seqnames = append(seqnames, i_seqname)
    lengths  = append(lengths,  i_length)
  }
  if err := rows.Err(); err != nil {
    return genome, err
  }
  return NewGenome(seqnames, lengths), nil
}
