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

import "errors"
import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

// Returned (wrapped) when an external executable cannot be found.
var ErrToolNotFound = errors.New("executable not found")

/* -------------------------------------------------------------------------- */

// A row of a table file that does not match the expected layout.
type SchemaError struct {
  Line    int
  Columns int
  Column  string
  Err     error
}

func (e *SchemaError) Error() string {
  if e.Column != "" {
    return fmt.Sprintf("line %d: invalid value in column `%s': %v", e.Line, e.Column, e.Err)
  }
  return fmt.Sprintf("line %d: expected %d columns but found %d", e.Line, narrowPeakColumns, e.Columns)
}

func (e *SchemaError) Unwrap() error {
  return e.Err
}

/* -------------------------------------------------------------------------- */

// A chromosome that reappears after rows of another chromosome. Peak tables
// must be grouped by chromosome.
type UnsortedError struct {
  Seqname   string
  Row       int
  FirstSeen int
}

func (e *UnsortedError) Error() string {
  return fmt.Sprintf("peaks are not grouped by chromosome: `%s' at row %d was already seen at row %d",
    e.Seqname, e.Row, e.FirstSeen)
}

/* -------------------------------------------------------------------------- */

// Failed invocation of an external tool.
type ToolError struct {
  Tool   string
  Args   []string
  Stderr string
  Err    error
}

func (e *ToolError) Error() string {
  msg := fmt.Sprintf("`%s %s' failed: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
  if s := strings.TrimSpace(e.Stderr); s != "" {
    msg += ": " + s
  }
  return msg
}

func (e *ToolError) Unwrap() error {
  return e.Err
}
