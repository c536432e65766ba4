// SPDX-License-Identifier: MPL-2.0

package textio

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// StdinName is the token that stands for standard input.
const StdinName = "-"

type (
	// Opener turns file name tokens into readable streams.
	// The zero value reads "-" from an empty stream and resolves paths against
	// the process working directory.
	Opener struct {
		// Stdin is returned for the "-" token.
		Stdin io.Reader
		// Dir is joined to relative paths. Empty means the process working directory.
		Dir string
	}

	// FileProcessor consumes one opened stream.
	// Parameters:
	//   - r: the input stream to process
	//   - name: the token as supplied (or "-" for stdin)
	//   - index: 0-based position of name in the argument list
	//   - total: number of tokens in the argument list
	FileProcessor func(r io.Reader, name string, index, total int) error

	// SkipFunc receives open failures that should not stop processing.
	SkipFunc func(err *OpenError)
)

// Open returns a stream for name. The caller owns the stream and must close it.
// Opening "-" never fails. Any other failure is an *OpenError.
func (o Opener) Open(name string) (io.ReadCloser, error) {
	if name == StdinName {
		return io.NopCloser(o.stdin()), nil
	}

	f, err := os.Open(o.resolve(name))
	if err != nil {
		return nil, &OpenError{Name: name, Err: err}
	}

	// os.Open succeeds on directories; reading them fails later with a
	// confusing error, so reject them here.
	info, err := f.Stat()
	if err != nil {
		_ = f.Close() // Stat failure already reported; close error adds nothing
		return nil, &OpenError{Name: name, Err: err}
	}
	if info.IsDir() {
		_ = f.Close() // Directory handle is discarded unread
		return nil, &OpenError{Name: name, Err: ErrIsDirectory}
	}
	return f, nil
}

// Process opens each name in order, hands the stream to processor and closes
// it before moving on. Only one stream is open at a time.
//
// Open failures are passed to skip and processing continues. When skip is nil
// the first open failure is returned instead. Errors from processor and close
// errors stop processing and are returned.
func (o Opener) Process(names []string, processor FileProcessor, skip SkipFunc) error {
	total := len(names)
	for i, name := range names {
		err := o.processOne(name, func(r io.Reader) error {
			return processor(r, name, i, total)
		})
		if err == nil {
			continue
		}

		var openErr *OpenError
		if skip != nil && errors.As(err, &openErr) {
			skip(openErr)
			continue
		}
		return err
	}
	return nil
}

// processOne opens a single name and guarantees the close on every exit path.
// Uses named return to fold close errors into the processor result.
func (o Opener) processOne(name string, fn func(io.Reader) error) (err error) {
	rc, err := o.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			err = multierr.Append(err, &ReadError{Name: name, Err: closeErr})
		}
	}()

	return fn(rc)
}

func (o Opener) stdin() io.Reader {
	if o.Stdin == nil {
		return eofReader{}
	}
	return o.Stdin
}

func (o Opener) resolve(name string) string {
	if o.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// eofReader is an empty stream.
type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// Create truncates or creates name for writing, resolved like Open.
// "-" is not special here; callers pick stdout themselves.
func (o Opener) Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(o.resolve(name))
	if err != nil {
		return nil, &OpenError{Name: name, Err: err}
	}
	return f, nil
}
