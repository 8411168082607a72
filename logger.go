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
import "io"
import "os"

/* -------------------------------------------------------------------------- */

// Messages are printed if their level does not exceed Verbose. A nil Writer
// prints to stderr.
type Logger struct {
  Verbose int
  Writer  io.Writer
}

func (l Logger) writer() io.Writer {
  if l.Writer == nil {
    return os.Stderr
  }
  return l.Writer
}

func (l Logger) Printf(level int, format string, args ...interface{}) {
  if l.Verbose >= level {
    fmt.Fprintf(l.writer(), format, args...)
  }
}
