package typeorm

import (
	"strings"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// GenEnum implements gen.EnumGenerator. Every member is both the name and
// the stored value of its enum entry.
func (*Dialect) GenEnum(g *gen.Graph, e *load.Enum) (string, error) {
	lines := header(g.Header)
	lines = append(lines, "export enum "+e.Name+" {")
	for _, m := range e.Items {
		q := quote(m)
		lines = append(lines, indent+q+" = "+q+",")
	}
	lines = append(lines, "};")
	return strings.Join(lines, "\n"), nil
}
