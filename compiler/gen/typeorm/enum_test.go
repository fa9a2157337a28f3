package typeorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

func TestGenEnum(t *testing.T) {
	g := gen.NewGraph(gen.MustNewConfig(), nil)
	d := NewDialect()

	t.Run("identity members", func(t *testing.T) {
		got, err := d.GenEnum(g, load.NewEnum("Status", "active", "inactive"))

		require.NoError(t, err)
		assert.Equal(t, golden(t, "Status.ts"), got)
	})

	t.Run("no members", func(t *testing.T) {
		got, err := d.GenEnum(g, load.NewEnum("Empty"))

		require.NoError(t, err)
		assert.Equal(t, "export enum Empty {\n};", got)
	})

	t.Run("members are quoted", func(t *testing.T) {
		got, err := d.GenEnum(g, load.NewEnum("Size", "x'l"))

		require.NoError(t, err)
		assert.Contains(t, got, `  'x\'l' = 'x\'l',`)
	})

	t.Run("header", func(t *testing.T) {
		hg := gen.NewGraph(gen.MustNewConfig(gen.WithHeader("generated")), nil)
		got, err := d.GenEnum(hg, load.NewEnum("Status", "active"))

		require.NoError(t, err)
		assert.Equal(t, "// generated\nexport enum Status {\n  'active' = 'active',\n};", got)
	})
}
