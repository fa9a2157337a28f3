package typeorm

import (
	"fmt"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// baseImport declares the decorators and the base class used by the
// generated entities.
const baseImport = `import { Column, CreateDateColumn, DeleteDateColumn, Entity, JoinColumn, ManyToOne, OneToMany, PrimaryColumn, PrimaryGeneratedColumn, UpdateDateColumn, BaseEntity } from "typeorm";`

// dependencies returns the import statements of the items referenced by t,
// deduplicated by statement in first-seen order.
func dependencies(g *gen.Graph, t *load.Table) ([]string, error) {
	deps, err := g.Dependencies(t)
	if err != nil {
		return nil, err
	}
	stmts := make([]string, 0, len(deps))
	for _, it := range deps {
		stmts = append(stmts, importStatement(g.Layout, it))
	}
	return uniq(stmts), nil
}

func importStatement(l gen.Layout, it load.Item) string {
	return fmt.Sprintf("import { %s } from %s", it.ItemName(), quote(l.Import(it.ItemKind(), it.ItemName())))
}

// uniq removes repeated strings, keeping the first occurrence.
func uniq(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := s[:0]
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
