package typeorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// columnLines builds the lines of the last column of the last table in items.
func columnLines(t *testing.T, items ...load.Item) ([]string, error) {
	t.Helper()
	g := gen.NewGraph(gen.MustNewConfig(), items)
	require.NotEmpty(t, g.Tables)
	tbl := g.Tables[len(g.Tables)-1]
	require.NotEmpty(t, tbl.Columns)
	return column(g, tbl, tbl.Columns[len(tbl.Columns)-1])
}

func TestColumnCommon(t *testing.T) {
	t.Run("nullable by default", func(t *testing.T) {
		lines, err := columnLines(t, load.NewTable("T", load.NewColumn("name", load.Common("text"))))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@Column({",
			"  type: 'text',",
			"  nullable: true,",
			"})",
			"name?: string;",
		}, lines)
	})

	t.Run("required with default", func(t *testing.T) {
		c := load.NewColumn("created", load.Common("timestamp"), load.Null(false), load.Default(load.StringDefault("now()")))
		lines, err := columnLines(t, load.NewTable("T", c))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@Column({",
			"  type: 'timestamp',",
			"  nullable: false,",
			"  default: 'now()',",
			"})",
			"created!: Date;",
		}, lines)
	})

	t.Run("generated primary key", func(t *testing.T) {
		c := load.NewColumn("id", load.Common("int"), load.PrimaryKey(true), load.AutoIncrement(true))
		lines, err := columnLines(t, load.NewTable("User", c))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@Column({",
			"  type: 'int',",
			"  nullable: false,",
			"})",
			"@PrimaryGeneratedColumn('increment')",
			"id!: number;",
		}, lines)
	})

	t.Run("plain primary key", func(t *testing.T) {
		c := load.NewColumn("code", load.Common("varchar"), load.PrimaryKey(true), load.AutoIncrement(false))
		lines, err := columnLines(t, load.NewTable("T", c))

		require.NoError(t, err)
		assert.Contains(t, lines, "@PrimaryColumn()")
		assert.NotContains(t, lines, "@PrimaryGeneratedColumn('increment')")
	})

	t.Run("autoincrement without primary key", func(t *testing.T) {
		c := load.NewColumn("seq", load.Common("bigint"), load.AutoIncrement(true))
		lines, err := columnLines(t, load.NewTable("T", c))

		require.NoError(t, err)
		assert.Len(t, lines, 5)
	})

	t.Run("unique has no emission", func(t *testing.T) {
		plain, err := columnLines(t, load.NewTable("T", load.NewColumn("email", load.Common("varchar"))))
		require.NoError(t, err)
		unique, err := columnLines(t, load.NewTable("T", load.NewColumn("email", load.Common("varchar"), load.Unique(true))))
		require.NoError(t, err)

		assert.Equal(t, plain, unique)
	})

	t.Run("unmapped type", func(t *testing.T) {
		_, err := columnLines(t, load.NewTable("T", load.NewColumn("meta", load.Common("json"))))
		assert.True(t, gen.IsTypeError(err))
	})

	t.Run("unsupported default", func(t *testing.T) {
		c := load.NewColumn("d", load.Common("date"), load.Default(load.DefaultValue{Kind: "date"}))
		_, err := columnLines(t, load.NewTable("T", c))

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"T.d"`)
	})
}

func TestColumnDecimal(t *testing.T) {
	t.Run("precision and scale", func(t *testing.T) {
		lines, err := columnLines(t, load.NewTable("T", load.NewColumn("price", load.Decimal(10, 2), load.Default(load.NumberDefault(0)))))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@Column({",
			"  type: 'decimal',",
			"  precision: 10,",
			"  scale: 2,",
			"  nullable: true,",
			"  default: 0,",
			"})",
			"price?: number;",
		}, lines)
	})

	t.Run("absent parameters are omitted", func(t *testing.T) {
		lines, err := columnLines(t, load.NewTable("T", load.NewColumn("price", load.Decimal(8, 0))))

		require.NoError(t, err)
		assert.Contains(t, lines, "  precision: 8,")
		for _, l := range lines {
			assert.NotContains(t, l, "scale")
		}
	})
}

func TestColumnChars(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		lines, err := columnLines(t, load.NewTable("T", load.NewColumn("email", load.Chars(255), load.Null(false))))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@Column({",
			"  type: 'varchar',",
			"  length: 255,",
			"  nullable: false,",
			"})",
			"email!: string;",
		}, lines)
	})

	t.Run("absent length is omitted", func(t *testing.T) {
		lines, err := columnLines(t, load.NewTable("T", load.NewColumn("email", load.Chars(0))))

		require.NoError(t, err)
		assert.Len(t, lines, 5)
	})
}

func TestColumnEnum(t *testing.T) {
	c := load.NewColumn("status", load.EnumRef("Status"), load.Default(load.EnumDefault("Status", "active")))
	lines, err := columnLines(t, load.NewEnum("Status", "active"), load.NewTable("User", c))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"@Column({",
		"  type: 'enum',",
		"  enum: Status,",
		"  nullable: true,",
		"  default: 'active',",
		"})",
		"status?: Status;",
	}, lines)
}

func TestColumnRelation(t *testing.T) {
	user := load.NewTable("User",
		load.NewColumn("id", load.Common("int"), load.PrimaryKey(true)),
		load.NewColumn("handle", load.Chars(32), load.Null(false)),
	)

	t.Run("navigation and scalar members", func(t *testing.T) {
		post := load.NewTable("Post", load.NewColumn("author_id", load.Relation("User", "id"), load.Null(false)))
		lines, err := columnLines(t, user, post)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"@ManyToOne(() => User, x => x.id, { nullable: false })",
			"@JoinColumn({ name: 'author_id' })",
			"otm_author_id!: User;",
			"@Column({",
			"  name: 'author_id',",
			"  type: 'int',",
			"  nullable: false,",
			"})",
			"author_id!: number;",
		}, lines)
	})

	t.Run("scalar type follows the referenced column", func(t *testing.T) {
		post := load.NewTable("Post", load.NewColumn("author", load.Relation("User", "handle")))
		lines, err := columnLines(t, user, post)

		require.NoError(t, err)
		assert.Contains(t, lines, "  type: 'varchar',")
		assert.Contains(t, lines, "author?: string;")
		assert.Contains(t, lines, "otm_author?: User;")
		assert.Contains(t, lines, "@ManyToOne(() => User, x => x.handle, { nullable: true })")
	})

	t.Run("own attributes only", func(t *testing.T) {
		post := load.NewTable("Post", load.NewColumn("author_id", load.Relation("User", "id"), load.Default(load.NumberDefault(1))))
		lines, err := columnLines(t, user, post)

		require.NoError(t, err)
		for _, l := range lines {
			assert.NotContains(t, l, "default")
			assert.NotContains(t, l, "Primary")
		}
	})

	t.Run("missing table", func(t *testing.T) {
		post := load.NewTable("Post", load.NewColumn("author_id", load.Relation("Account", "id")))
		_, err := columnLines(t, user, post)

		var refErr *gen.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, gen.RefTable, refErr.Ref)
	})

	t.Run("missing column", func(t *testing.T) {
		post := load.NewTable("Post", load.NewColumn("author_id", load.Relation("User", "uid")))
		_, err := columnLines(t, user, post)

		var refErr *gen.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, gen.RefColumn, refErr.Ref)
		assert.Equal(t, "User", refErr.ForeignTable)
	})

	t.Run("referenced column with unmapped type", func(t *testing.T) {
		doc := load.NewTable("Doc", load.NewColumn("body", load.Common("json")))
		post := load.NewTable("Post", load.NewColumn("doc", load.Relation("Doc", "body")))
		_, err := columnLines(t, doc, post)

		assert.True(t, gen.IsTypeError(err))
	})
}

func TestColumnUnknownKind(t *testing.T) {
	_, err := columnLines(t, load.NewTable("T", load.NewColumn("c", load.Type{Kind: "array", Type: "int"})))

	var typeErr *gen.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "c", typeErr.Column)
}

func TestNavigationField(t *testing.T) {
	assert.Equal(t, "otm_author_id", NavigationField(load.NewColumn("author_id", load.Relation("User", "id"))))
}
