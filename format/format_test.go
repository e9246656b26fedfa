package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/lam/lambda"
	"github.com/dhamidi/lam/lambda/parser"
)

func TestTextEncoderValid(t *testing.T) {
	res := lambda.Check(`\x.\y (x y b c)`, parser.AssocNone)
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(&res); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := `The tokenized string for input string \x.\y (x y b c) is \_x_(_\_y_(_x_y_b_c_)_)` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextEncoderInvalid(t *testing.T) {
	res := lambda.Check("(a", parser.AssocNone)
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(&res); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "Error in [(a] at position 2: Expected closing parenthesis, found EOL.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestJSONEncoder(t *testing.T) {
	res := lambda.Check("(a b)", parser.AssocNone)
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(&res); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var decoded struct {
		Input  string   `json:"input"`
		Valid  bool     `json:"valid"`
		Tokens []string `json:"tokens"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !decoded.Valid || decoded.Input != "(a b)" {
		t.Errorf("decoded = %+v", decoded)
	}
	if got := strings.Join(decoded.Tokens, " "); got != "( a b )" {
		t.Errorf("tokens = %q, want %q", got, "( a b )")
	}
}

func TestJSONEncoderError(t *testing.T) {
	res := lambda.Check("()", parser.AssocNone)
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(&res); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var decoded struct {
		Valid bool `json:"valid"`
		Error struct {
			Code     string `json:"code"`
			Position int    `json:"position"`
			Message  string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.Valid {
		t.Error("valid = true, want false")
	}
	if decoded.Error.Code != "EmptyGroup" || decoded.Error.Position != 1 {
		t.Errorf("error = %+v", decoded.Error)
	}
	if decoded.Error.Message != "Missing tokens between brackets." {
		t.Errorf("message = %q", decoded.Error.Message)
	}
}

func TestTreeEncoder(t *testing.T) {
	res := lambda.Check("(a b)", parser.AssocNone)
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(&res); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "(_a_b_)\n" +
		"--------(\n" +
		"--------a_b\n" +
		"------------a\n" +
		"------------b\n" +
		"--------)\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}
