package parser

import "strings"

type NodeKind int

const (
	// NodeExpr covers a full token window: the tree root and every
	// bracket interior. Its label is the window joined for display.
	NodeExpr NodeKind = iota
	// NodeGroup is a bracket group. It always has exactly three
	// children: an open-paren leaf, the interior NodeExpr, and a
	// close-paren leaf.
	NodeGroup
	// NodeBinder holds the lambda marker together with its bound
	// variable name.
	NodeBinder
	// NodeLeaf is a single display token.
	NodeLeaf
)

var nodeKindNames = map[NodeKind]string{
	NodeExpr:   "Expr",
	NodeGroup:  "Group",
	NodeBinder: "Binder",
	NodeLeaf:   "Leaf",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Node struct {
	Kind     NodeKind
	Token    Token   // NodeLeaf
	Name     string  // NodeBinder: the bound variable
	Tokens   []Token // NodeExpr: the window the node covers
	Children []*Node
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Lines returns the display lines of the node's label, without
// indentation. Group nodes have no label of their own.
func (n *Node) Lines() []string {
	switch n.Kind {
	case NodeExpr:
		return []string{Join(n.Tokens, "_")}
	case NodeBinder:
		return []string{`\`, n.Name}
	case NodeLeaf:
		return []string{n.Token.String()}
	}
	return nil
}

func (n *Node) String() string {
	var b strings.Builder
	n.stringIndent(&b, 0)
	return b.String()
}

func (n *Node) stringIndent(b *strings.Builder, level int) {
	indent := strings.Repeat("----", level)
	for _, line := range n.Lines() {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, child := range n.Children {
		child.stringIndent(b, level+1)
	}
}

// ParseTree owns the full node graph built from one validated token
// sequence. Strict tree: no sharing between subtrees.
type ParseTree struct {
	Root *Node
}

func (t *ParseTree) String() string { return t.Root.String() }

// BuildParseTree builds the display tree for a token sequence that
// already passed Tokenize. It performs no grammar validation, but
// structural defects in a hand-made sequence are reported as
// MalformedTokenSequence errors instead of reading out of range.
func BuildParseTree(tokens []Token) (*ParseTree, error) {
	root, err := buildNode(tokens)
	if err != nil {
		return nil, err
	}
	return &ParseTree{Root: root}, nil
}

func buildNode(tokens []Token) (*Node, error) {
	node := &Node{Kind: NodeExpr, Tokens: tokens}
	i := 0
	for i < len(tokens) {
		switch tok := tokens[i]; tok.Kind {
		case TokenLParen:
			depth := 1
			j := i + 1
			for j < len(tokens) && depth > 0 {
				switch tokens[j].Kind {
				case TokenLParen:
					depth++
				case TokenRParen:
					depth--
				}
				j++
			}
			if depth > 0 {
				return nil, &SyntaxError{
					Code:    CodeMalformedTokenSequence,
					Input:   Render(tokens),
					Pos:     i + 1,
					Message: "Unmatched open parenthesis in token sequence.",
				}
			}
			interior, err := buildNode(tokens[i+1 : j-1])
			if err != nil {
				return nil, err
			}
			group := &Node{Kind: NodeGroup}
			group.AddChild(&Node{Kind: NodeLeaf, Token: lparenToken})
			group.AddChild(interior)
			group.AddChild(&Node{Kind: NodeLeaf, Token: rparenToken})
			node.AddChild(group)
			i = j
		case TokenLambda:
			if i+1 >= len(tokens) || tokens[i+1].Kind != TokenIdent {
				return nil, &SyntaxError{
					Code:    CodeMalformedTokenSequence,
					Input:   Render(tokens),
					Pos:     i + 1,
					Message: "Lambda marker without a bound variable.",
				}
			}
			node.AddChild(&Node{Kind: NodeBinder, Name: tokens[i+1].Name})
			i += 2
		default:
			node.AddChild(&Node{Kind: NodeLeaf, Token: tok})
			i++
		}
	}
	return node, nil
}
