package gen

import "github.com/syssam/ormgen/compiler/load"

// Attributes is the resolved view over the attribute list of a column.
// Only the first attribute of each kind is taken into account.
type Attributes struct {
	// Nullable is nil when the column has no null attribute.
	Nullable      *bool
	Default       *load.DefaultValue
	PrimaryKey    bool
	Unique        bool
	AutoIncrement bool
}

// ResolveAttributes resolves the attributes of c in a single pass.
func ResolveAttributes(c *load.Column) Attributes {
	var (
		a    Attributes
		seen = make(map[load.AttributeKind]bool, len(c.Attributes))
	)
	for _, attr := range c.Attributes {
		if seen[attr.Kind] {
			continue
		}
		seen[attr.Kind] = true
		switch attr.Kind {
		case load.AttrNull:
			nullable := attr.Flag
			a.Nullable = &nullable
		case load.AttrDefault:
			a.Default = attr.Default
		case load.AttrPrimaryKey:
			a.PrimaryKey = attr.Flag
		case load.AttrUnique:
			a.Unique = attr.Flag
		case load.AttrAutoIncrement:
			a.AutoIncrement = attr.Flag
		}
	}
	return a
}

// Required reports whether the column is declared non-nullable. An explicit
// null attribute decides; without one, primary keys are required and every
// other column is nullable.
func (a Attributes) Required() bool {
	if a.Nullable != nil {
		return !*a.Nullable
	}
	return a.PrimaryKey
}

// Generated reports whether the column is an auto-increment primary key.
func (a Attributes) Generated() bool {
	return a.PrimaryKey && a.AutoIncrement
}
