package parser

import "strings"

type TokenKind int

const (
	TokenLambda TokenKind = iota
	TokenIdent
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenLambda: "Lambda",
	TokenIdent:  "Identifier",
	TokenLParen: "OpenParen",
	TokenRParen: "CloseParen",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical unit: the lambda marker, an identifier, or one
// parenthesis. Name is set only for TokenIdent.
type Token struct {
	Kind TokenKind
	Name string
}

func Ident(name string) Token { return Token{Kind: TokenIdent, Name: name} }

var (
	lambdaToken = Token{Kind: TokenLambda}
	lparenToken = Token{Kind: TokenLParen}
	rparenToken = Token{Kind: TokenRParen}
)

// String returns the token's surface spelling.
func (t Token) String() string {
	switch t.Kind {
	case TokenLambda:
		return `\`
	case TokenIdent:
		return t.Name
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return "?"
}

// Join renders tokens separated by sep, for display.
func Join(tokens []Token, sep string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

// Render produces a source form that tokenizes back to the same
// sequence. Only adjacent identifiers need a separating space; every
// other pairing is unambiguous when concatenated.
func Render(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && t.Kind == TokenIdent && tokens[i-1].Kind == TokenIdent {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
