package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/lam/lambda"
	"github.com/dhamidi/lam/lambda/parser"
)

// TextEncoder prints one line per result: the tokenized string for a
// valid line, the diagnostic for an invalid one.
type TextEncoder struct {
	w   io.Writer
	sep string
	res *lambda.Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w, sep: "_"}
}

func (e *TextEncoder) Encode(res *lambda.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	if e.res.Err != nil {
		return []byte(e.res.Err.Error() + "\n"), nil
	}
	line := fmt.Sprintf("The tokenized string for input string %s is %s\n",
		e.res.Input, parser.Join(e.res.Tokens, e.sep))
	return []byte(line), nil
}
