package typeorm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/ormgen/compiler/load"
)

var quoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote returns s as a single-quoted TypeScript string literal.
func quote(s string) string {
	return "'" + quoter.Replace(s) + "'"
}

// DefaultLiteral serializes a default value into the literal used by the
// default option of @Column. Booleans are emitted quoted ('true', 'false').
func DefaultLiteral(v *load.DefaultValue) (string, error) {
	switch v.Kind {
	case load.DefaultString:
		return quote(v.Text), nil
	case load.DefaultNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64), nil
	case load.DefaultBoolean:
		return quote(strconv.FormatBool(v.Bool)), nil
	case load.DefaultEnum:
		return quote(v.EnumValue), nil
	default:
		return "", fmt.Errorf("typeorm: unsupported default value type %q", v.Kind)
	}
}
