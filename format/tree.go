package format

import (
	"io"

	"github.com/dhamidi/lam/lambda"
)

// TreeEncoder renders the parse tree of a valid result, one label line
// per node, indented four dashes per level.
type TreeEncoder struct {
	w   io.Writer
	res *lambda.Result
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(res *lambda.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.res.Err != nil {
		return []byte(e.res.Err.Error() + "\n"), nil
	}
	tree, err := e.res.Tree()
	if err != nil {
		return nil, err
	}
	return []byte(tree.String()), nil
}
