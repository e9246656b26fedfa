// Package parser validates and tokenizes lambda-calculus surface syntax.
//
// The surface language consists of variables, abstraction with a `\`
// marker, application by juxtaposition, parenthesized grouping, and a
// dot-notation shorthand for abstraction bodies:
//
//	\x.x y        abstraction with dot sugar
//	\x (x y)      abstraction without sugar
//	a b c         application chain, left-associative by convention
//
// # Tokenizing
//
// Tokenize recognizes one whole expression and returns its token
// sequence, or a SyntaxError carrying a human-readable message and the
// 1-based character offset into the original line:
//
//	tokens, err := parser.Tokenize(`\x.\y (x y)`, parser.AssocNone)
//
// Dots are sugar, not tokens: the body following a dot is wrapped in an
// explicit parenthesis pair unless its own leading bracket already spans
// the entire body. With AssocLeft or AssocRight, flat application chains
// are additionally disambiguated into explicit left- or right-nested
// groups (see Associate).
//
// # Parse trees
//
// BuildParseTree consumes a validated token sequence and produces a
// display tree whose shape mirrors bracket nesting and binder placement.
// It performs no validation of its own, but structural defects are
// reported as errors rather than causing a panic.
//
// A parser invocation owns all of its intermediate state; separate calls
// are independent and safe to run concurrently.
package parser
