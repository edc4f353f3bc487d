package report

import (
	"encoding/json"
	"io"

	"gwc/internal/model"
)

type jsonCounts struct {
	Lines *int `json:"lines,omitempty"`
	Words *int `json:"words,omitempty"`
	Chars *int `json:"chars,omitempty"`
}

type jsonInput struct {
	Name string `json:"name"`
	*jsonCounts
	Error string `json:"error,omitempty"`
}

type jsonDocument struct {
	Inputs []jsonInput  `json:"inputs"`
	Total  *jsonCounts `json:"total,omitempty"`
}

func selected(c model.Counts, d Display) *jsonCounts {
	var out jsonCounts
	if d.Lines {
		out.Lines = &c.Lines
	}
	if d.Words {
		out.Words = &c.Words
	}
	if d.Chars {
		out.Chars = &c.Chars
	}
	return &out
}

// WriteJSON encodes a whole run as one indented JSON document. Failed
// inputs carry an "error" field instead of counts.
func WriteJSON(w io.Writer, s model.Summary, d Display) error {
	doc := jsonDocument{Inputs: make([]jsonInput, 0, len(s.Results))}
	for _, r := range s.Results {
		in := jsonInput{Name: r.Name}
		if r.Failed() {
			in.Error = r.Err.Error()
		} else {
			in.jsonCounts = selected(r.Counts, d)
		}
		doc.Inputs = append(doc.Inputs, in)
	}
	if s.ShowTotal {
		doc.Total = selected(s.Total, d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
