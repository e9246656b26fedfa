// Package format renders check results for display. The core
// constructs token sequences and parse trees but never formats them;
// all presentation lives here.
package format

import (
	"encoding"

	"github.com/dhamidi/lam/lambda"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(res *lambda.Result) error
}
