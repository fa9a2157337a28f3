package typeorm

import (
	"fmt"
	"strings"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

const indent = "  "

// GenEntity implements gen.EntityGenerator.
func (*Dialect) GenEntity(g *gen.Graph, t *load.Table) (string, error) {
	imports, err := dependencies(g, t)
	if err != nil {
		return "", err
	}
	lines := header(g.Header)
	lines = append(lines, baseImport)
	lines = append(lines, imports...)
	lines = append(lines,
		"",
		fmt.Sprintf("@Entity(%s)", quote(t.Name)),
		fmt.Sprintf("export class %s extends BaseEntity {", t.Name),
	)
	for _, c := range t.Columns {
		if c == nil {
			continue
		}
		members, err := column(g, t, c)
		if err != nil {
			return "", err
		}
		for _, m := range members {
			lines = append(lines, indent+m)
		}
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n"), nil
}

// header returns the comment lines of the configured file header.
func header(h string) []string {
	if h == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(h, "\n") {
		lines = append(lines, strings.TrimRight("// "+l, " "))
	}
	return lines
}
