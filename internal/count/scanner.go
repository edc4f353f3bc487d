package count

import (
	"io"
	"strings"
	"unicode/utf8"

	"gwc/internal/model"
	"gwc/internal/source"
)

// LineSource produces lines without their terminators.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Scan tallies every line of src. On a read failure the partial counts are
// discarded and the failure is returned.
func Scan(src LineSource) (model.Counts, error) {
	var c model.Counts
	for src.Scan() {
		line := src.Text()

		c.Lines++
		c.Words += len(strings.Fields(line))
		// +1 for the stripped terminator, even when the last line had none.
		c.Chars += utf8.RuneCountInString(line) + 1
	}
	if err := src.Err(); err != nil {
		return model.Counts{}, err
	}
	return c, nil
}

// File opens sel, scans it and releases it on every path.
func File(sel source.Selector, stdin io.Reader) (model.Counts, error) {
	lines, err := source.Open(sel, stdin)
	if err != nil {
		return model.Counts{}, err
	}
	defer lines.Close()

	return Scan(lines)
}
