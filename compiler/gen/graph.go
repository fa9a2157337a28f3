package gen

import "github.com/syssam/ormgen/compiler/load"

// Graph is the model of one compile, partitioned by kind and indexed by
// name. It is built once per compile and only read afterwards.
type Graph struct {
	*Config
	// Tables and Enums hold the items in input order.
	Tables []*load.Table
	Enums  []*load.Enum

	tables  map[string]*load.Table
	enums   map[string]*load.Enum
	columns map[*load.Table]map[string]*load.Column
}

// Relation is the target of a relation-typed column.
type Relation struct {
	// Table is the referenced table.
	Table *load.Table
	// Column is the foreign-key column on Table.
	Column *load.Column
}

// NewGraph partitions the items by kind and indexes them by name. When a
// name is declared twice, lookups resolve to the first declaration.
func NewGraph(c *Config, items []load.Item) *Graph {
	g := &Graph{
		Config:  c,
		tables:  make(map[string]*load.Table),
		enums:   make(map[string]*load.Enum),
		columns: make(map[*load.Table]map[string]*load.Column),
	}
	for _, it := range items {
		switch it := it.(type) {
		case *load.Table:
			if it == nil {
				continue
			}
			g.Tables = append(g.Tables, it)
			if _, ok := g.tables[it.Name]; !ok {
				g.tables[it.Name] = it
			}
			cols := make(map[string]*load.Column, len(it.Columns))
			for _, c := range it.Columns {
				if c == nil {
					continue
				}
				if _, ok := cols[c.Name]; !ok {
					cols[c.Name] = c
				}
			}
			g.columns[it] = cols
		case *load.Enum:
			if it == nil {
				continue
			}
			g.Enums = append(g.Enums, it)
			if _, ok := g.enums[it.Name]; !ok {
				g.enums[it.Name] = it
			}
		}
	}
	return g
}

// Table returns the table declared with the given name.
func (g *Graph) Table(name string) (*load.Table, bool) {
	t, ok := g.tables[name]
	return t, ok
}

// Enum returns the enum declared with the given name.
func (g *Graph) Enum(name string) (*load.Enum, bool) {
	e, ok := g.enums[name]
	return e, ok
}

// Column returns the column of t declared with the given name.
func (g *Graph) Column(t *load.Table, name string) (*load.Column, bool) {
	if cols, ok := g.columns[t]; ok {
		c, ok := cols[name]
		return c, ok
	}
	// t is not part of the graph.
	return t.Column(name)
}

// Relation resolves the table and the foreign-key column referenced by the
// relation-typed column c of table t.
func (g *Graph) Relation(t *load.Table, c *load.Column) (*Relation, error) {
	if c.Type.Kind != load.TypeRelation {
		return nil, &TypeError{Kind: string(c.Type.Kind), Type: c.Type.Type, Table: t.Name, Column: c.Name}
	}
	ft, ok := g.Table(c.Type.TableName)
	if !ok {
		return nil, NewReferenceError(RefTable, c.Type.TableName, t.Name, c.Name)
	}
	fc, ok := g.Column(ft, c.Type.ForeignKey)
	if !ok {
		err := NewReferenceError(RefColumn, c.Type.ForeignKey, t.Name, c.Name)
		err.ForeignTable = ft.Name
		return nil, err
	}
	return &Relation{Table: ft, Column: fc}, nil
}

// Dependencies returns the items referenced by the enum and relation columns
// of t, in column order. An item referenced twice is returned twice.
func (g *Graph) Dependencies(t *load.Table) ([]load.Item, error) {
	var deps []load.Item
	for _, c := range t.Columns {
		if c == nil {
			continue
		}
		switch c.Type.Kind {
		case load.TypeEnum:
			e, ok := g.Enum(c.Type.EnumName)
			if !ok {
				return nil, NewReferenceError(RefEnum, c.Type.EnumName, t.Name, c.Name)
			}
			deps = append(deps, e)
		case load.TypeRelation:
			ft, ok := g.Table(c.Type.TableName)
			if !ok {
				return nil, NewReferenceError(RefTable, c.Type.TableName, t.Name, c.Name)
			}
			deps = append(deps, ft)
		}
	}
	return deps, nil
}
