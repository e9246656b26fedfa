package parser

import "fmt"

type ErrorCode int

const (
	CodeMalformedVariable ErrorCode = iota
	CodeIllegalDotSpacing
	CodeUnbalancedParenthesis
	CodeEmptyGroup
	CodeInvalidIdentifierStart
	CodeUnexpectedCharacter
	CodeNestingTooDeep
	CodeMalformedTokenSequence
)

var errorCodeNames = map[ErrorCode]string{
	CodeMalformedVariable:      "MalformedVariable",
	CodeIllegalDotSpacing:      "IllegalDotSpacing",
	CodeUnbalancedParenthesis:  "UnbalancedParenthesis",
	CodeEmptyGroup:             "EmptyGroup",
	CodeInvalidIdentifierStart: "InvalidIdentifierStart",
	CodeUnexpectedCharacter:    "UnexpectedCharacter",
	CodeNestingTooDeep:         "NestingTooDeep",
	CodeMalformedTokenSequence: "MalformedTokenSequence",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// SyntaxError reports a single violation in one input line. Pos is the
// 1-based character offset into the original untrimmed input, except
// for MalformedTokenSequence where it is the 1-based token index.
type SyntaxError struct {
	Code    ErrorCode
	Input   string
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Error in [%s] at position %d: %s", e.Input, e.Pos, e.Message)
}
