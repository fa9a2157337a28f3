// Package load holds the schema model handed to the compiler: tables, enums,
// their columns, type descriptors and column attributes.
//
// The model is produced upstream and treated as immutable by the compiler.
package load

// Kind discriminates the items of a schema model.
type Kind string

// Item kinds.
const (
	KindTable Kind = "table"
	KindEnum  Kind = "enum"
)

// Item is one element of a schema model. It is implemented by *Table and *Enum.
type Item interface {
	// ItemKind returns the discriminator of the item.
	ItemKind() Kind
	// ItemName returns the declared name of the item.
	ItemName() string

	item()
}

// Table is a named relation with an ordered list of typed columns.
type Table struct {
	Name    string    `json:"name" yaml:"name"`
	Columns []*Column `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// ItemKind implements Item.
func (*Table) ItemKind() Kind { return KindTable }

// ItemName implements Item.
func (t *Table) ItemName() string { return t.Name }

func (*Table) item() {}

// Column returns the first column declared with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c != nil && c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Enum is a named, ordered set of string members.
type Enum struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// ItemKind implements Item.
func (*Enum) ItemKind() Kind { return KindEnum }

// ItemName implements Item.
func (e *Enum) ItemName() string { return e.Name }

func (*Enum) item() {}

// Column is a named, typed field of a table.
type Column struct {
	Name       string      `json:"name" yaml:"name"`
	Type       Type        `json:"type" yaml:"type"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// TypeKind discriminates the variants of a column type descriptor.
type TypeKind string

// Type descriptor kinds.
const (
	TypeCommon   TypeKind = "common"
	TypeDecimal  TypeKind = "decimal"
	TypeChars    TypeKind = "chars"
	TypeEnum     TypeKind = "enum"
	TypeRelation TypeKind = "relation"
)

// Type describes the type of a column. Kind selects the variant and Type
// holds its storage sub-type (e.g. "int", "varchar", "decimal"). The other
// fields are only meaningful for their variant; a zero Precision, Scale or
// Size means the parameter is absent.
type Type struct {
	Kind TypeKind `json:"kind" yaml:"kind"`
	Type string   `json:"type" yaml:"type"`

	// decimal.
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     int `json:"scale,omitempty" yaml:"scale,omitempty"`
	// chars.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	// enum.
	EnumName string `json:"enum_name,omitempty" yaml:"enum_name,omitempty"`
	// relation.
	TableName  string `json:"table_name,omitempty" yaml:"table_name,omitempty"`
	ForeignKey string `json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
}

// String returns the "kind.type" form of the descriptor.
func (t Type) String() string {
	return string(t.Kind) + "." + t.Type
}

// IsReference reports whether the type refers to another item of the model.
func (t Type) IsReference() bool {
	return t.Kind == TypeEnum || t.Kind == TypeRelation
}

// NewTable returns a table with the given columns.
func NewTable(name string, columns ...*Column) *Table {
	return &Table{Name: name, Columns: columns}
}

// NewEnum returns an enum with the given members.
func NewEnum(name string, items ...string) *Enum {
	return &Enum{Name: name, Items: items}
}

// NewColumn returns a column of the given type.
func NewColumn(name string, typ Type, attrs ...Attribute) *Column {
	return &Column{Name: name, Type: typ, Attributes: attrs}
}

// Common returns a common SQL type such as "int", "text" or "timestamp".
func Common(typ string) Type {
	return Type{Kind: TypeCommon, Type: typ}
}

// Decimal returns a decimal type. Zero precision or scale are omitted.
func Decimal(precision, scale int) Type {
	return Type{Kind: TypeDecimal, Type: "decimal", Precision: precision, Scale: scale}
}

// Chars returns a varchar type. A zero size is omitted.
func Chars(size int) Type {
	return Type{Kind: TypeChars, Type: "varchar", Size: size}
}

// EnumRef returns a type referencing the enum with the given name.
func EnumRef(name string) Type {
	return Type{Kind: TypeEnum, Type: "enum", EnumName: name}
}

// Relation returns a type referencing column fk of the given table.
func Relation(table, fk string) Type {
	return Type{Kind: TypeRelation, Type: "relation", TableName: table, ForeignKey: fk}
}
