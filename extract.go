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
import "context"
import "fmt"
import "io"
import "os"
import "os/exec"

/* -------------------------------------------------------------------------- */

// Resolves the regions of a bed file to sequences of a reference genome and
// writes them as FASTA records to outFile.
type RegionExtractor interface {
  Extract(ctx context.Context, bedFile, reference, outFile string) error
}

// Copies the sequence lines (every second line) of a FASTA file with one
// line per sequence to outFile.
type LineFilter interface {
  Filter(ctx context.Context, inFile, outFile string) error
}

/* -------------------------------------------------------------------------- */

func runTool(ctx context.Context, tool string, args []string, stdout io.Writer) error {
  path, err := exec.LookPath(tool)
  if err != nil {
    return &ToolError{Tool: tool, Args: args, Err: fmt.Errorf("%w: %v", ErrToolNotFound, err)}
  }
  var stderr bytes.Buffer

  cmd := exec.CommandContext(ctx, path, args...)
  cmd.Stdout = stdout
  cmd.Stderr = &stderr
  if err := cmd.Run(); err != nil {
    return &ToolError{Tool: tool, Args: args, Stderr: stderr.String(), Err: err}
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Region extraction with `bedtools getfasta'.
type BedtoolsExtractor struct {
  Path string
}

func (e BedtoolsExtractor) Extract(ctx context.Context, bedFile, reference, outFile string) error {
  tool := e.Path
  if tool == "" {
    tool = "bedtools"
  }
  return runTool(ctx, tool, []string{"getfasta", "-fi", reference, "-bed", bedFile, "-fo", outFile}, io.Discard)
}

/* -------------------------------------------------------------------------- */

// Line filter that calls awk.
type AwkFilter struct {
  Path string
}

func (f AwkFilter) Filter(ctx context.Context, inFile, outFile string) error {
  tool := f.Path
  if tool == "" {
    tool = "awk"
  }
  out, err := os.Create(outFile)
  if err != nil {
    return err
  }
  w := bufio.NewWriter(out)
  if err := runTool(ctx, tool, []string{"(NR%2==0)", inFile}, w); err != nil {
    out.Close()
    return err
  }
  if err := w.Flush(); err != nil {
    out.Close()
    return err
  }
  return out.Close()
}

/* -------------------------------------------------------------------------- */

// In-process line filter.
type EvenLineFilter struct{}

func (EvenLineFilter) Filter(ctx context.Context, inFile, outFile string) error {
  in, err := os.Open(inFile)
  if err != nil {
    return err
  }
  defer in.Close()

  var buffer bytes.Buffer
  if err := filterEvenLines(ctx, in, &buffer); err != nil {
    return err
  }
  return writeFile(outFile, &buffer, false)
}

func filterEvenLines(ctx context.Context, r io.Reader, w io.Writer) error {
  reader := bufio.NewReader(r)
  writer := bufio.NewWriter(w)
  for i := 1; ; i++ {
    if i % 1024 == 0 {
      if err := ctx.Err(); err != nil {
        return err
      }
    }
    line, err := bufioReadLine(reader)
    if err == io.EOF {
      break
    }
    if err != nil {
      return err
    }
    if i % 2 == 0 {
      fmt.Fprintln(writer, line)
    }
  }
  return writer.Flush()
}

func bufioReadLine(reader *bufio.Reader) (string, error) {
  l, err := reader.ReadString('\n')
  if err != nil {
    // ignore EOF errors if some bytes were read
    if len(l) > 0 && err == io.EOF {
      return l, nil
    }
    return l, err
  }
  // remove newline character
  return l[0:len(l)-1], err
}
