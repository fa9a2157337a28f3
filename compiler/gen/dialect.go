package gen

import "github.com/syssam/ormgen/compiler/load"

// EntityGenerator generates the artifact of one table.
type EntityGenerator interface {
	// GenEntity returns the source of the entity generated for t.
	GenEntity(g *Graph, t *load.Table) (string, error)
}

// EnumGenerator generates the artifact of one enum.
type EnumGenerator interface {
	// GenEnum returns the source of the enumeration generated for e.
	GenEnum(g *Graph, e *load.Enum) (string, error)
}

// Dialect maps the model onto the annotation vocabulary of one persistence
// framework. Generators must not mutate the graph or its items; the compiler
// may call them concurrently.
type Dialect interface {
	// Name returns the dialect name (e.g. "typeorm").
	Name() string
	// Ext returns the file extension of the generated artifacts, dot included.
	Ext() string
	EntityGenerator
	EnumGenerator
}
