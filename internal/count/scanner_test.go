package count

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwc/internal/model"
	"gwc/internal/source"
)

func scanString(t *testing.T, s string) model.Counts {
	t.Helper()
	c, err := Scan(source.NewLines("-", strings.NewReader(s)))
	require.NoError(t, err)
	return c
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Counts
	}{
		{"empty", "", model.Counts{}},
		{"repeated whitespace", "a b  c\n", model.Counts{Lines: 1, Words: 3, Chars: 7}},
		{"missing final newline", "ab", model.Counts{Lines: 1, Words: 1, Chars: 3}},
		{"two lines", "hello world\nfoo\n", model.Counts{Lines: 2, Words: 3, Chars: 16}},
		{"blank lines", "\n\n", model.Counts{Lines: 2, Words: 0, Chars: 2}},
		{"leading and trailing space", "  spaced  out\t\n", model.Counts{Lines: 1, Words: 2, Chars: 15}},
		{"codepoints not bytes", "héllo wörld\n", model.Counts{Lines: 1, Words: 2, Chars: 12}},
		{"unicode whitespace", "a b　c\n", model.Counts{Lines: 1, Words: 3, Chars: 6}},
		{"crlf", "one two\r\nthree\r\n", model.Counts{Lines: 2, Words: 3, Chars: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanString(t, tt.input))
		})
	}
}

func TestScanMonotonic(t *testing.T) {
	inputs := []string{"x", "x\n", " x \n\n", "a b\nc"}
	for _, in := range inputs {
		c := scanString(t, in)
		assert.Positive(t, c.Lines, in)
		assert.Positive(t, c.Words, in)
		assert.Positive(t, c.Chars, in)

		// Appending input never decreases any counter.
		more := scanString(t, in+"\nmore words\n")
		assert.GreaterOrEqual(t, more.Lines, c.Lines)
		assert.GreaterOrEqual(t, more.Words, c.Words)
		assert.GreaterOrEqual(t, more.Chars, c.Chars)
	}
}

func TestScanLineCount(t *testing.T) {
	// Terminators plus one for an unterminated, non-empty final line.
	assert.Equal(t, 3, scanString(t, "a\nb\nc\n").Lines)
	assert.Equal(t, 3, scanString(t, "a\nb\nc").Lines)
}

type brokenSource struct {
	lines []string
	err   error
}

func (b *brokenSource) Scan() bool {
	return len(b.lines) > 0
}

func (b *brokenSource) Text() string {
	line := b.lines[0]
	b.lines = b.lines[1:]
	return line
}

func (b *brokenSource) Err() error {
	return b.err
}

func TestScanDiscardsPartialCounts(t *testing.T) {
	boom := errors.New("boom")
	c, err := Scan(&brokenSource{lines: []string{"one", "two words"}, err: boom})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, model.Counts{}, c)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nfoo\n"), 0o644))

	c, err := File(source.Selector(path), nil)
	require.NoError(t, err)
	assert.Equal(t, model.Counts{Lines: 2, Words: 3, Chars: 16}, c)
}

func TestFileStdin(t *testing.T) {
	c, err := File(source.Stdin, strings.NewReader("a b  c\n"))
	require.NoError(t, err)
	assert.Equal(t, model.Counts{Lines: 1, Words: 3, Chars: 7}, c)
}

func TestFileFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := File(source.Selector(filepath.Join(dir, "missing.txt")), nil)
	var ioErr *source.IoError
	assert.ErrorAs(t, err, &ioErr)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("fine\n\xc3\x28\n"), 0o644))
	c, err := File(source.Selector(bad), nil)
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, model.Counts{}, c)
}
