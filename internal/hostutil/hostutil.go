// Package hostutil wires small host-side conveniences into xb's built-in
// Environment: unique IDs (google/uuid), human-readable formatting
// (dustin/go-humanize), and a debug dumper (kr/pretty) for inspecting a
// Value's underlying Go representation during script development.
package hostutil

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/mcjo163/xb/internal/value"
)

// NewUUID returns a fresh RFC 4122 v4 identifier as an xb String.
func NewUUID() *value.String {
	return value.NewString(uuid.New().String())
}

// HumanizeNumber renders a Number with comma digit grouping: an integer via
// humanize.Comma ("1,234,567"), any other Number via
// humanize.CommafWithDigits with at most two decimals ("1,234.57"). No
// other humanize forms (byte counts, SI suffixes, durations) are exposed.
func HumanizeNumber(n *value.Number) (*value.String, error) {
	if n.IsInt {
		return value.NewString(humanize.Comma(n.I)), nil
	}
	return value.NewString(humanize.CommafWithDigits(n.F, 2)), nil
}

// Dump renders v's internal Go structure for debugging, via kr/pretty.
// wrapErr exists purely so the one error path in this package (an
// unexpected nil Value) carries a stack-annotated cause, the idiom sentra
// uses pkg/errors for.
func Dump(v value.Value) (*value.String, error) {
	if v == nil {
		return nil, wrapErr(fmt.Errorf("dump: nil value"))
	}
	return value.NewString(pretty.Sprint(v)), nil
}

func wrapErr(err error) error {
	return errors.WithStack(err)
}
