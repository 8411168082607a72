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
import "compress/gzip"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Close(); err != nil {
      return err
    }
  } else {
    w := bufio.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Flush(); err != nil {
      return err
    }
  }
  return os.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

type readCloser struct {
  io.Reader
  closers []io.Closer
}

func (r readCloser) Close() error {
  var err error
  for i := len(r.closers)-1; i >= 0; i-- {
    if e := r.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Open a file for reading, transparently decompressing gzipped input.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if !isGzip(filename) {
    return f, nil
  }
  g, err := gzip.NewReader(f)
  if err != nil {
    f.Close()
    return nil, err
  }
  return readCloser{g, []io.Closer{f, g}}, nil
}
