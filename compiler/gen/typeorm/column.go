package typeorm

import (
	"fmt"
	"strconv"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// column returns the member lines emitted for column c of table t.
func column(g *gen.Graph, t *load.Table, c *load.Column) ([]string, error) {
	switch c.Type.Kind {
	case load.TypeCommon:
		return scalarColumn(t, c, c.Type.Type)
	case load.TypeDecimal:
		var opts []string
		if c.Type.Precision != 0 {
			opts = append(opts, "precision: "+strconv.Itoa(c.Type.Precision)+",")
		}
		if c.Type.Scale != 0 {
			opts = append(opts, "scale: "+strconv.Itoa(c.Type.Scale)+",")
		}
		return scalarColumn(t, c, c.Type.Type, opts...)
	case load.TypeChars:
		var opts []string
		if c.Type.Size != 0 {
			opts = append(opts, "length: "+strconv.Itoa(c.Type.Size)+",")
		}
		return scalarColumn(t, c, c.Type.Type, opts...)
	case load.TypeEnum:
		return scalarColumn(t, c, "enum", "enum: "+c.Type.EnumName+",")
	case load.TypeRelation:
		return relationColumn(g, t, c)
	default:
		return nil, &gen.TypeError{Kind: string(c.Type.Kind), Type: c.Type.Type, Table: t.Name, Column: c.Name}
	}
}

// scalarColumn emits a @Column member stored with the given type. The extra
// options are placed between the type and the nullable options.
func scalarColumn(t *load.Table, c *load.Column, storage string, extra ...string) ([]string, error) {
	typ, err := columnType(t, c)
	if err != nil {
		return nil, err
	}
	attrs := gen.ResolveAttributes(c)
	opts := make([]string, 0, len(extra)+3)
	opts = append(opts, "type: "+quote(storage)+",")
	opts = append(opts, extra...)
	opts = append(opts, fmt.Sprintf("nullable: %t,", !attrs.Required()))
	if attrs.Default != nil {
		lit, err := DefaultLiteral(attrs.Default)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", t.Name+"."+c.Name, err)
		}
		opts = append(opts, "default: "+lit+",")
	}
	lines := decorator("@Column", opts)
	switch {
	case attrs.Generated():
		lines = append(lines, "@PrimaryGeneratedColumn('increment')")
	case attrs.PrimaryKey:
		lines = append(lines, "@PrimaryColumn()")
	}
	// Unique is resolved but has no @Column counterpart yet.
	return append(lines, member(c.Name, attrs.Required(), typ)), nil
}

// relationColumn emits the many-to-one navigation member of c followed by
// the scalar member holding the foreign key. Both members take their
// nullability from c; the scalar member takes its type from the referenced
// column.
func relationColumn(g *gen.Graph, t *load.Table, c *load.Column) ([]string, error) {
	rel, err := g.Relation(t, c)
	if err != nil {
		return nil, err
	}
	typ, err := columnType(rel.Table, rel.Column)
	if err != nil {
		return nil, err
	}
	var (
		required = gen.ResolveAttributes(c).Required()
		nullable = fmt.Sprintf("nullable: %t", !required)
	)
	lines := []string{
		fmt.Sprintf("@ManyToOne(() => %s, x => x.%s, { %s })", rel.Table.Name, rel.Column.Name, nullable),
		fmt.Sprintf("@JoinColumn({ name: %s })", quote(c.Name)),
		member(NavigationField(c), required, rel.Table.Name),
	}
	lines = append(lines, decorator("@Column", []string{
		"name: " + quote(c.Name) + ",",
		"type: " + quote(rel.Column.Type.Type) + ",",
		nullable + ",",
	})...)
	return append(lines, member(c.Name, required, typ)), nil
}

// NavigationField returns the name of the many-to-one member generated for
// a relation column.
func NavigationField(c *load.Column) string {
	return "otm_" + c.Name
}

// decorator emits a decorator call taking one object literal, one option
// per line.
func decorator(name string, opts []string) []string {
	lines := make([]string, 0, len(opts)+2)
	lines = append(lines, name+"({")
	for _, o := range opts {
		lines = append(lines, indent+o)
	}
	return append(lines, "})")
}

// member emits a class member declaration. Required members use the
// definite assignment marker, others are optional.
func member(name string, required bool, typ string) string {
	mark := "?"
	if required {
		mark = "!"
	}
	return name + mark + ": " + typ + ";"
}
