package lambda

import "github.com/dhamidi/lam/lambda/parser"

// Result is the outcome of checking one input line. Tokens is set on
// success, Err on failure; a blank line yields an empty valid result.
type Result struct {
	Input  string
	Tokens []parser.Token
	Err    error
}

func (r *Result) Valid() bool { return r.Err == nil }

// Empty reports whether the line produced no tokens at all.
func (r *Result) Empty() bool { return r.Err == nil && len(r.Tokens) == 0 }

// Tree builds the display parse tree for a valid result.
func (r *Result) Tree() (*parser.ParseTree, error) {
	return parser.BuildParseTree(r.Tokens)
}

// Check validates a single expression.
func Check(input string, mode parser.AssocMode) Result {
	tokens, err := parser.Tokenize(input, mode)
	return Result{Input: input, Tokens: tokens, Err: err}
}

// CheckLines validates each line on its own; a malformed line does not
// affect the lines after it.
func CheckLines(lines []string, mode parser.AssocMode) []Result {
	results := make([]Result, len(lines))
	for i, line := range lines {
		results[i] = Check(line, mode)
	}
	return results
}

// CheckFile reads fp and validates every line in it.
func CheckFile(fp string, mode parser.AssocMode) ([]Result, error) {
	lines, err := ReadLines(fp)
	if err != nil {
		return nil, err
	}
	return CheckLines(lines, mode), nil
}
