package gen

import (
	"golang.org/x/sync/errgroup"

	"github.com/syssam/ormgen/compiler/load"
)

// Compiler turns a schema model into generated artifacts using a Dialect.
// A Compiler holds no state between calls and may be shared.
type Compiler struct {
	cfg     *Config
	dialect Dialect
}

// NewCompiler creates a compiler for the given dialect.
//
// Example:
//
//	c, err := gen.NewCompiler(typeorm.NewDialect(), gen.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	out, err := c.Compile(items)
func NewCompiler(d Dialect, opts ...Option) (*Compiler, error) {
	if d == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Compiler{cfg: cfg, dialect: d}, nil
}

// Config returns the configuration of the compiler.
func (c *Compiler) Config() *Config {
	return c.cfg
}

// Compile builds the artifact of every table and enum in items. Any failure
// aborts the whole compile and no output is returned. When several items
// fail, the error of the first one in input order is returned, tables first.
func (c *Compiler) Compile(items []load.Item) (*Output, error) {
	g := NewGraph(c.cfg, items)
	var (
		ext    = c.dialect.Ext()
		tables = make([]File, len(g.Tables))
		enums  = make([]File, len(g.Enums))
		errs   = make([]error, len(g.Tables)+len(g.Enums))
		eg     errgroup.Group
	)
	eg.SetLimit(c.cfg.Workers)
	for i, t := range g.Tables {
		eg.Go(func() error {
			content, err := c.dialect.GenEntity(g, t)
			if err != nil {
				errs[i] = NewGenerationError("table", t.Name, err)
				return errs[i]
			}
			tables[i] = File{Name: g.Layout.ItemPath(t, ext), Content: content}
			c.cfg.Logger.Debug("entity generated", "dialect", c.dialect.Name(), "table", t.Name, "file", tables[i].Name)
			return nil
		})
	}
	for i, e := range g.Enums {
		eg.Go(func() error {
			content, err := c.dialect.GenEnum(g, e)
			if err != nil {
				errs[len(g.Tables)+i] = NewGenerationError("enum", e.Name, err)
				return errs[len(g.Tables)+i]
			}
			enums[i] = File{Name: g.Layout.ItemPath(e, ext), Content: content}
			c.cfg.Logger.Debug("enum generated", "dialect", c.dialect.Name(), "enum", e.Name, "file", enums[i].Name)
			return nil
		})
	}
	// Wait reports whichever failure happened first in time.
	if eg.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}
	out := &Output{
		Table: ItemOutput{Files: tables, Map: make(map[string]string, len(g.Tables))},
		Enum:  ItemOutput{Files: enums, Map: make(map[string]string, len(g.Enums))},
	}
	for _, t := range g.Tables {
		out.Table.Map[t.Name] = g.Layout.ItemPath(t, "")
	}
	for _, e := range g.Enums {
		out.Enum.Map[e.Name] = g.Layout.ItemPath(e, "")
	}
	c.cfg.Logger.Debug("compile finished", "dialect", c.dialect.Name(), "tables", len(tables), "enums", len(enums))
	return out, nil
}
