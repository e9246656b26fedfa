package parser

import (
	"errors"
	"testing"
)

func TestBuildParseTreeBinderAndGroup(t *testing.T) {
	// hand-made sequence, bypassing validation
	tokens := []Token{lambdaToken, Ident("x"), lparenToken, Ident("y"), rparenToken}

	tree, err := BuildParseTree(tokens)
	if err != nil {
		t.Fatalf("BuildParseTree error: %v", err)
	}

	root := tree.Root
	if root.Kind != NodeExpr {
		t.Fatalf("root kind = %v, want Expr", root.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	binder := root.Children[0]
	if binder.Kind != NodeBinder || binder.Name != "x" {
		t.Errorf("first child = %v %q, want Binder x", binder.Kind, binder.Name)
	}

	group := root.Children[1]
	if group.Kind != NodeGroup {
		t.Fatalf("second child kind = %v, want Group", group.Kind)
	}
	if len(group.Children) != 3 {
		t.Fatalf("group has %d children, want 3", len(group.Children))
	}
	if group.Children[0].Kind != NodeLeaf || group.Children[0].Token.Kind != TokenLParen {
		t.Errorf("group child 0 is not an open-paren leaf")
	}
	interior := group.Children[1]
	if interior.Kind != NodeExpr || len(interior.Children) != 1 {
		t.Fatalf("group interior = %v with %d children, want Expr with 1", interior.Kind, len(interior.Children))
	}
	if leaf := interior.Children[0]; leaf.Kind != NodeLeaf || leaf.Token.Name != "y" {
		t.Errorf("interior child is not leaf y")
	}
	if group.Children[2].Kind != NodeLeaf || group.Children[2].Token.Kind != TokenRParen {
		t.Errorf("group child 2 is not a close-paren leaf")
	}
}

func TestBuildParseTreeMalformed(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"lambda at end", []Token{lambdaToken}},
		{"lambda before paren", []Token{lambdaToken, lparenToken, Ident("x"), rparenToken}},
		{"unmatched open", []Token{lparenToken, Ident("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildParseTree(tt.tokens)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) || syntaxErr.Code != CodeMalformedTokenSequence {
				t.Fatalf("BuildParseTree = %v, want MalformedTokenSequence", err)
			}
		})
	}
}

func TestBuildParseTreeStrayClose(t *testing.T) {
	// a lone close paren cannot come from the tokenizer, but the
	// builder treats it like any other atomic token
	tree, err := BuildParseTree([]Token{rparenToken})
	if err != nil {
		t.Fatalf("BuildParseTree error: %v", err)
	}
	if len(tree.Root.Children) != 1 || tree.Root.Children[0].Kind != NodeLeaf {
		t.Errorf("stray close paren did not become a leaf")
	}
}

func TestParseTreeString(t *testing.T) {
	tokens, err := Tokenize("(a b)", AssocNone)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	tree, err := BuildParseTree(tokens)
	if err != nil {
		t.Fatalf("BuildParseTree error: %v", err)
	}

	want := "(_a_b_)\n" +
		"--------(\n" +
		"--------a_b\n" +
		"------------a\n" +
		"------------b\n" +
		"--------)\n"
	if got := tree.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestParseTreeFromDotExpression(t *testing.T) {
	tokens, err := Tokenize(`\x.\y (x y b c)`, AssocNone)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	tree, err := BuildParseTree(tokens)
	if err != nil {
		t.Fatalf("BuildParseTree error: %v", err)
	}

	root := tree.Root
	if got, want := Join(root.Tokens, "_"), `\_x_(_\_y_(_x_y_b_c_)_)`; got != want {
		t.Errorf("root window = %q, want %q", got, want)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want binder + group", len(root.Children))
	}
	if root.Children[0].Kind != NodeBinder || root.Children[0].Name != "x" {
		t.Errorf("first child is not binder x")
	}
	if root.Children[1].Kind != NodeGroup {
		t.Errorf("second child is not the desugared body group")
	}
}
