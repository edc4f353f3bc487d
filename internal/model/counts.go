package model

// Counts is the tally of one input: lines, words and characters.
// The zero value is the identity for Add.
type Counts struct {
	Lines int `json:"lines"`
	Words int `json:"words"`
	Chars int `json:"chars"`
}

// Add returns the field-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Lines: c.Lines + other.Lines,
		Words: c.Words + other.Words,
		Chars: c.Chars + other.Chars,
	}
}

// Sum folds Add over records, starting from the zero Counts.
func Sum(records ...Counts) Counts {
	var total Counts
	for _, r := range records {
		total = total.Add(r)
	}
	return total
}

// Result is the outcome of counting a single input.
type Result struct {
	Name   string // Display name ("-" for standard input)
	Counts Counts // Zero when Err is set
	Err    error  // Open or read failure, if any
}

// Failed reports whether the input could not be counted.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Summary contains every per-input result of a run and their total.
type Summary struct {
	Results   []Result
	Total     Counts // Sum of the successful results only
	ShowTotal bool   // More than one input was given
}
