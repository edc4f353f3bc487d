package source

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Stdin is the selector that stands for the process's standard input.
const Stdin Selector = "-"

var (
	errIsDir       = errors.New("is a directory")
	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Selector names one input: a filesystem path or the Stdin sentinel.
type Selector string

// IsStdin reports whether s refers to standard input.
func (s Selector) IsStdin() bool {
	return s == Stdin
}

// DisplayName is the name printed next to the counts of s.
func (s Selector) DisplayName() string {
	return string(s)
}

// IoError is an open or read failure for a single input.
type IoError struct {
	Name string // Display name of the input
	Op   string // "open" or "read"
	Err  error
}

// Error returns only the human-readable reason; callers prefix the name.
func (e *IoError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Err.Error()
	}
	return e.Err.Error()
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// Lines yields the lines of an input one at a time, without their
// terminators. It follows the bufio.Scanner calling convention but has no
// maximum line length.
type Lines struct {
	name   string
	r      *bufio.Reader
	closer io.Closer
	line   string
	err    error
	done   bool
}

// Open resolves sel to a line source. The Stdin sentinel reads from stdin,
// which is never closed; any other selector is opened as a file.
func Open(sel Selector, stdin io.Reader) (*Lines, error) {
	name := sel.DisplayName()
	if sel.IsStdin() {
		return newLines(name, stdin, nil), nil
	}

	file, err := os.Open(string(sel))
	if err != nil {
		return nil, &IoError{Name: name, Op: "open", Err: err}
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &IoError{Name: name, Op: "open", Err: err}
	}
	if info.IsDir() {
		file.Close()
		return nil, &IoError{Name: name, Op: "open", Err: errIsDir}
	}
	return newLines(name, file, file), nil
}

// NewLines wraps an arbitrary reader. Close is a no-op.
func NewLines(name string, r io.Reader) *Lines {
	return newLines(name, r, nil)
}

func newLines(name string, r io.Reader, closer io.Closer) *Lines {
	return &Lines{
		name:   name,
		r:      bufio.NewReader(r),
		closer: closer,
	}
}

// Scan advances to the next line. It returns false at end of input or on
// the first failure, which Err then reports.
func (l *Lines) Scan() bool {
	if l.done {
		return false
	}

	text, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if !errors.Is(err, io.EOF) {
			l.err = &IoError{Name: l.name, Op: "read", Err: err}
			return false
		}
		if text == "" {
			return false
		}
	}

	// CRLF is only stripped as a pair; a bare trailing \r is content.
	if strings.HasSuffix(text, "\n") {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}

	if !utf8.ValidString(text) {
		l.done = true
		l.err = &IoError{Name: l.name, Op: "read", Err: errInvalidUTF8}
		return false
	}

	l.line = text
	return true
}

// Text returns the line produced by the last successful Scan.
func (l *Lines) Text() string {
	return l.line
}

// Err returns the failure that stopped Scan, or nil at a clean end of input.
func (l *Lines) Err() error {
	return l.err
}

// Close releases the underlying file, if Lines owns one.
func (l *Lines) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
