// Package lambda ties the tokenizer, associativity resolver and
// parse-tree builder together for line-oriented input: one expression
// per line, every line checked independently of the others.
package lambda

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads fp and returns its lines with surrounding whitespace
// and newline characters removed.
func ReadLines(fp string) ([]string, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}
