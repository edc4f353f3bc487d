package config

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwc/internal/report"
	"gwc/internal/source"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse("gwc", nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []source.Selector{source.Stdin}, opts.Inputs)
	assert.Equal(t, report.All(), opts.Display)
	assert.False(t, opts.JSON)
	assert.False(t, opts.Interactive)
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want report.Display
	}{
		{"none means all", []string{"a.txt"}, report.All()},
		{"all explicit", []string{"-l", "-w", "-c"}, report.All()},
		{"combined shorthand", []string{"-lw"}, report.Display{Lines: true, Words: true}},
		{"long lines", []string{"--lines"}, report.Display{Lines: true}},
		{"long words", []string{"--words"}, report.Display{Words: true}},
		{"short chars", []string{"-c"}, report.Display{Chars: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse("gwc", tt.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Display)
		})
	}
}

func TestParseInputsKeepOrder(t *testing.T) {
	opts, err := Parse("gwc", []string{"b.txt", "-l", "-", "a.txt"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []source.Selector{"b.txt", "-", "a.txt"}, opts.Inputs)
	assert.Equal(t, report.Display{Lines: true}, opts.Display)
}

func TestParseModes(t *testing.T) {
	opts, err := Parse("gwc", []string{"--json", "-v", "-V", "-u", "-i"}, io.Discard)
	require.NoError(t, err)

	assert.True(t, opts.JSON)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.Version)
	assert.True(t, opts.Update)
	assert.True(t, opts.Interactive)
}

func TestParseHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse("gwc", []string{"--help"}, &buf)

	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, buf.String(), "Usage: gwc [options] [FILE...]")
	assert.Contains(t, buf.String(), "--lines")
}

func TestParseUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse("gwc", []string{"--bogus"}, &buf)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "bogus")
}
