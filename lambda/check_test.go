package lambda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/lam/lambda/parser"
)

func writeLines(t *testing.T, content string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "examples.txt")
	if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestReadLinesTrims(t *testing.T) {
	fp := writeLines(t, "  a b  \n\t(c d)\n")
	lines, err := ReadLines(fp)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	want := []string{"a b", "(c d)"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCheckFileLinesAreIndependent(t *testing.T) {
	fp := writeLines(t, "a b\n(\nc\n")
	results, err := CheckFile(fp, parser.AssocNone)
	if err != nil {
		t.Fatalf("CheckFile error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].Valid() {
		t.Errorf("line 1 invalid: %v", results[0].Err)
	}
	if results[1].Valid() {
		t.Errorf("line 2 valid, want unbalanced-parenthesis failure")
	}
	if !results[2].Valid() {
		t.Errorf("line 3 invalid after a failing line: %v", results[2].Err)
	}
}

func TestCheckBlankLine(t *testing.T) {
	res := Check("", parser.AssocNone)
	if !res.Valid() || !res.Empty() {
		t.Errorf("blank line: Valid=%v Empty=%v, want both true", res.Valid(), res.Empty())
	}
}

func TestResultTree(t *testing.T) {
	res := Check(`\x.y`, parser.AssocNone)
	if !res.Valid() {
		t.Fatalf("Check error: %v", res.Err)
	}
	tree, err := res.Tree()
	if err != nil {
		t.Fatalf("Tree error: %v", err)
	}
	if tree.Root == nil || len(tree.Root.Children) == 0 {
		t.Error("Tree built no nodes")
	}
}
