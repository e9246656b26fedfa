package parser

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("lam.parser")

// AssocMode selects how flat application chains are disambiguated. The
// zero value preserves the input's implicit left-to-right juxtaposition.
type AssocMode string

const (
	AssocNone  AssocMode = ""
	AssocLeft  AssocMode = "left"
	AssocRight AssocMode = "right"
)

// ModeFromString maps a user-supplied mode name onto an AssocMode.
// Unrecognized names pass through unchanged: Associate warns and
// degrades to no grouping rather than failing hard.
func ModeFromString(s string) AssocMode {
	if s == "" || s == "none" {
		return AssocNone
	}
	return AssocMode(s)
}

// Associate wraps a flat application chain in explicit parentheses.
// AssocLeft produces (((a b) c) d)-style nesting, AssocRight produces
// (a (b (c d))). Sequences of at most one token are returned unchanged,
// as is the input for an unrecognized mode.
func Associate(tokens []Token, mode AssocMode) []Token {
	if len(tokens) <= 1 {
		return tokens
	}
	switch mode {
	case AssocLeft:
		group := Associate(tokens[:len(tokens)-1], mode)
		out := make([]Token, 0, len(group)+3)
		out = append(out, lparenToken)
		out = append(out, group...)
		out = append(out, tokens[len(tokens)-1], rparenToken)
		return out
	case AssocRight:
		group := Associate(tokens[1:], mode)
		out := make([]Token, 0, len(group)+3)
		out = append(out, lparenToken, tokens[0])
		out = append(out, group...)
		out = append(out, rparenToken)
		return out
	default:
		log.Warningf("unknown association type %q, using default grouping", string(mode))
		return tokens
	}
}
