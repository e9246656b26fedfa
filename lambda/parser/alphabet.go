package parser

// The alphabet is ASCII only: variable names are case-sensitive runs of
// letters and digits starting with a letter.

func IsLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func IsDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func IsIdentChar(ch byte) bool {
	return IsLetter(ch) || IsDigit(ch)
}

// IsStructural reports whether ch is one of the four structural
// characters of the surface syntax.
func IsStructural(ch byte) bool {
	return ch == '(' || ch == ')' || ch == '.' || ch == '\\'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
