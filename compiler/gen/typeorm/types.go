package typeorm

import (
	"github.com/syssam/ormgen/compiler/gen"
	"github.com/syssam/ormgen/compiler/load"
)

// MapType returns the TypeScript type of values stored with the given type
// descriptor. Enum and relation types map to the name of the referenced item.
// Every other kind and sub-type pair outside the supported set fails with a
// *gen.TypeError.
func MapType(t load.Type) (string, error) {
	switch t.Kind {
	case load.TypeCommon:
		switch t.Type {
		case "text", "varchar":
			return "string", nil
		case "int", "float", "bigint", "tinyint", "smallint", "real", "decimal":
			return "number", nil
		case "boolean":
			return "boolean", nil
		case "timestamp", "date":
			return "Date", nil
		}
	case load.TypeDecimal:
		if t.Type == "decimal" {
			return "number", nil
		}
	case load.TypeChars:
		if t.Type == "varchar" {
			return "string", nil
		}
	case load.TypeEnum:
		if t.Type == "enum" && t.EnumName != "" {
			return t.EnumName, nil
		}
	case load.TypeRelation:
		if t.Type == "relation" && t.TableName != "" {
			return t.TableName, nil
		}
	}
	return "", &gen.TypeError{Kind: string(t.Kind), Type: t.Type}
}

// columnType is like MapType for the column c of table t, and names the
// column in the returned error.
func columnType(t *load.Table, c *load.Column) (string, error) {
	typ, err := MapType(c.Type)
	if err != nil {
		return "", &gen.TypeError{Kind: string(c.Type.Kind), Type: c.Type.Type, Table: t.Name, Column: c.Name}
	}
	return typ, nil
}
