package parser

import "fmt"

const defaultMaxDepth = 512

type Option func(*tokenizer)

// WithMaxDepth bounds the nesting depth (brackets plus abstraction
// chains) accepted before the tokenizer fails closed.
func WithMaxDepth(n int) Option {
	return func(t *tokenizer) {
		t.maxDepth = n
	}
}

type tokenizer struct {
	input    string
	mode     AssocMode
	maxDepth int
}

// Tokenize validates input and returns its token sequence, desugaring
// dot bodies into explicit parentheses. mode requests associativity
// disambiguation of flat application chains; AssocNone preserves the
// input's implicit grouping. Any failure aborts the whole line: no
// partial token sequence is ever returned.
func Tokenize(input string, mode AssocMode, opts ...Option) ([]Token, error) {
	t := &tokenizer{input: input, mode: mode, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(t)
	}
	return t.parse(0, len(input), 0)
}

func (t *tokenizer) errorf(code ErrorCode, pos int, format string, args ...any) error {
	return &SyntaxError{
		Code:    code,
		Input:   t.input,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// parse recognizes input[lo:hi]. The cursor is an index into the full
// immutable input, so error offsets always refer to the original line.
func (t *tokenizer) parse(lo, hi, depth int) ([]Token, error) {
	if depth > t.maxDepth {
		return nil, t.errorf(CodeNestingTooDeep, lo+1, "Maximum nesting depth exceeded.")
	}
	i := lo
	for i < hi && isSpace(t.input[i]) {
		i++
	}
	for hi > i && isSpace(t.input[hi-1]) {
		hi--
	}
	if i >= hi {
		return nil, nil
	}
	switch ch := t.input[i]; {
	case ch == '\\':
		return t.parseLambda(i, hi, depth)
	case ch == '(':
		return t.parseBracket(i, hi, depth)
	case IsIdentChar(ch):
		return t.parseChain(i, hi, depth)
	default:
		return nil, t.errorf(CodeUnexpectedCharacter, i+1, "Unexpected token '%c'", ch)
	}
}

// parseLambda handles `\` followed by a bound variable, optional dot
// sugar, and the abstraction body.
func (t *tokenizer) parseLambda(i, hi, depth int) ([]Token, error) {
	nameStart := i + 1
	j := nameStart
	for j < hi && IsIdentChar(t.input[j]) {
		j++
	}
	if j == nameStart {
		return nil, t.errorf(CodeMalformedVariable, i+2, "No valid variable name found.")
	}
	if !IsLetter(t.input[nameStart]) {
		return nil, t.errorf(CodeMalformedVariable, i+2, "Variable must start with a character.")
	}
	name := t.input[nameStart:j]

	k := j
	for k < hi && isSpace(t.input[k]) {
		k++
	}
	dotExpr := false
	if k < hi && t.input[k] == '.' {
		// the dot must sit directly against the variable name
		if k > j {
			return nil, t.errorf(CodeIllegalDotSpacing, k, "No spaces allowed between variable and dot.")
		}
		k++
		dotExpr = true
	} else if hi-k <= 1 {
		return nil, t.errorf(CodeMalformedVariable, i+2, "No expression found after variable.")
	}

	body, err := t.parse(k, hi, depth+1)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, t.errorf(CodeMalformedVariable, i+2, "No expression found after variable.")
	}

	tokens := []Token{lambdaToken, Ident(name)}
	if dotExpr && !spansWhole(body) {
		tokens = append(tokens, lparenToken)
		tokens = append(tokens, body...)
		tokens = append(tokens, rparenToken)
	} else {
		tokens = append(tokens, body...)
	}
	return tokens, nil
}

// spansWhole reports whether tokens begin with an open paren whose
// match is the final token, i.e. the existing brackets already scope
// the entire body and dot desugaring needs no extra pair.
func spansWhole(tokens []Token) bool {
	if len(tokens) == 0 || tokens[0].Kind != TokenLParen {
		return false
	}
	depth := 1
	for i := 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
		if depth == 0 {
			return i == len(tokens)-1
		}
	}
	return false
}

// parseBracket handles a parenthesized group and whatever application
// follows it.
func (t *tokenizer) parseBracket(i, hi, depth int) ([]Token, error) {
	count := 1
	j := i + 1
	for j < hi && count != 0 {
		switch t.input[j] {
		case '(':
			count++
		case ')':
			count--
		}
		j++
	}
	if count > 0 {
		found := "EOL."
		if j < hi-1 {
			found = string(t.input[j+1]) + "."
		}
		return nil, t.errorf(CodeUnbalancedParenthesis, j, "Expected closing parenthesis, found %s", found)
	}
	if j-i <= 2 {
		return nil, t.errorf(CodeEmptyGroup, i+1, "Missing tokens between brackets.")
	}
	inner, err := t.parse(i+1, j-1, depth+1)
	if err != nil {
		return nil, err
	}
	if len(inner) == 0 {
		return nil, t.errorf(CodeEmptyGroup, i+1, "Missing tokens between brackets.")
	}

	// With disambiguation requested, a group followed by more input is
	// wrapped in an extra pair so the continuation groups unambiguously.
	disambiguate := t.mode != AssocNone && j+1 < hi
	var tokens []Token
	if disambiguate {
		tokens = append(tokens, lparenToken)
	}
	tokens = append(tokens, lparenToken)
	tokens = append(tokens, inner...)
	tokens = append(tokens, rparenToken)
	if j < hi {
		rest, err := t.parse(j, hi, depth+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, rest...)
	}
	if disambiguate {
		tokens = append(tokens, rparenToken)
	}
	return tokens, nil
}

// parseChain handles a run of juxtaposed identifiers and whatever
// follows the run.
func (t *tokenizer) parseChain(i, hi, depth int) ([]Token, error) {
	if !IsLetter(t.input[i]) {
		return nil, t.errorf(CodeInvalidIdentifierStart, i+1, "Name must start with a character.")
	}
	j := i + 1
	for j < hi && (IsIdentChar(t.input[j]) || isSpace(t.input[j])) {
		j++
	}

	var chain []Token
	pos := i
	for pos < j {
		if isSpace(t.input[pos]) {
			pos++
			continue
		}
		start := pos
		for pos < j && IsIdentChar(t.input[pos]) {
			pos++
		}
		if !IsLetter(t.input[start]) {
			return nil, t.errorf(CodeInvalidIdentifierStart, start+1, "Name must start with a character.")
		}
		chain = append(chain, Ident(t.input[start:pos]))
	}
	if t.mode != AssocNone {
		chain = Associate(chain, t.mode)
	}

	tokens := chain
	if j < hi {
		rest, err := t.parse(j, hi, depth+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, rest...)
	}
	return tokens, nil
}
