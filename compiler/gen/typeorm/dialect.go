package typeorm

import (
	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// Compile is a convenience function compiling items with the TypeORM dialect.
// This is the recommended entry point.
//
// Example:
//
//	out, err := typeorm.Compile(items, gen.WithWorkers(1))
func Compile(items []load.Item, opts ...gen.Option) (*gen.Output, error) {
	c, err := gen.NewCompiler(NewDialect(), opts...)
	if err != nil {
		return nil, err
	}
	return c.Compile(items)
}

// Dialect implements gen.Dialect for TypeORM.
type Dialect struct{}

// NewDialect creates a new TypeORM dialect.
func NewDialect() *Dialect {
	return &Dialect{}
}

// Name implements gen.Dialect.
func (*Dialect) Name() string { return "typeorm" }

// Ext implements gen.Dialect.
func (*Dialect) Ext() string { return ".ts" }

// Verify Dialect implements gen.Dialect at compile time.
var _ gen.Dialect = (*Dialect)(nil)
