package report

import (
	"fmt"
	"strings"

	"gwc/internal/model"
)

// TotalName labels the aggregate line.
const TotalName = "total"

// fieldWidth is the minimum width each selected count is padded to.
const fieldWidth = 8

// Display selects which counts are printed.
type Display struct {
	Lines bool
	Words bool
	Chars bool
}

// All selects every count.
func All() Display {
	return Display{Lines: true, Words: true, Chars: true}
}

// None reports whether no count is selected.
func (d Display) None() bool {
	return !d.Lines && !d.Words && !d.Chars
}

// Format renders the selected counts of c, right-justified and unseparated.
func Format(c model.Counts, d Display) string {
	var b strings.Builder
	for _, f := range []struct {
		show  bool
		value int
	}{
		{d.Lines, c.Lines},
		{d.Words, c.Words},
		{d.Chars, c.Chars},
	} {
		if f.show {
			fmt.Fprintf(&b, "%*d", fieldWidth, f.value)
		}
	}
	return b.String()
}

// Line is a full output line: the selected counts, a space and the name.
func Line(c model.Counts, d Display, name string) string {
	return Format(c, d) + " " + name
}
