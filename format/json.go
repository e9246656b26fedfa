package format

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dhamidi/lam/lambda"
	"github.com/dhamidi/lam/lambda/parser"
)

type JSONEncoder struct {
	w   io.Writer
	res *lambda.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonResult struct {
	Input  string     `json:"input"`
	Valid  bool       `json:"valid"`
	Tokens []string   `json:"tokens,omitempty"`
	Error  *jsonError `json:"error,omitempty"`
}

type jsonError struct {
	Code     string `json:"code,omitempty"`
	Position int    `json:"position,omitempty"`
	Message  string `json:"message"`
}

func (e *JSONEncoder) Encode(res *lambda.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	out := jsonResult{Input: e.res.Input, Valid: e.res.Err == nil}
	if e.res.Err == nil {
		out.Tokens = make([]string, len(e.res.Tokens))
		for i, t := range e.res.Tokens {
			out.Tokens[i] = t.String()
		}
	} else {
		out.Error = &jsonError{Message: e.res.Err.Error()}
		var syntaxErr *parser.SyntaxError
		if errors.As(e.res.Err, &syntaxErr) {
			out.Error.Code = syntaxErr.Code.String()
			out.Error.Position = syntaxErr.Pos
			out.Error.Message = syntaxErr.Message
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
