package load

// AttributeKind names a per-column property.
type AttributeKind string

// Attribute kinds.
const (
	AttrNull          AttributeKind = "null"
	AttrDefault       AttributeKind = "default"
	AttrPrimaryKey    AttributeKind = "primary-key"
	AttrUnique        AttributeKind = "unique"
	AttrAutoIncrement AttributeKind = "autoincrement"
)

// Attribute is one column property. Flag holds the payload of the boolean
// kinds and Default the payload of AttrDefault.
type Attribute struct {
	Kind    AttributeKind
	Flag    bool
	Default *DefaultValue
}

// DefaultKind discriminates default value literals.
type DefaultKind string

// Default value kinds.
const (
	DefaultString  DefaultKind = "string"
	DefaultNumber  DefaultKind = "number"
	DefaultBoolean DefaultKind = "boolean"
	DefaultEnum    DefaultKind = "enum"
)

// DefaultValue is a typed default value literal.
type DefaultValue struct {
	Kind DefaultKind

	Text   string
	Number float64
	Bool   bool
	// EnumName and EnumValue are set for DefaultEnum.
	EnumName  string
	EnumValue string
}

// Null returns a nullability attribute.
func Null(nullable bool) Attribute {
	return Attribute{Kind: AttrNull, Flag: nullable}
}

// PrimaryKey returns a primary-key attribute.
func PrimaryKey(pk bool) Attribute {
	return Attribute{Kind: AttrPrimaryKey, Flag: pk}
}

// Unique returns a unique attribute.
func Unique(unique bool) Attribute {
	return Attribute{Kind: AttrUnique, Flag: unique}
}

// AutoIncrement returns an autoincrement attribute.
func AutoIncrement(inc bool) Attribute {
	return Attribute{Kind: AttrAutoIncrement, Flag: inc}
}

// Default returns a default-value attribute.
func Default(v DefaultValue) Attribute {
	return Attribute{Kind: AttrDefault, Default: &v}
}

// StringDefault returns a string default value.
func StringDefault(s string) DefaultValue {
	return DefaultValue{Kind: DefaultString, Text: s}
}

// NumberDefault returns a numeric default value.
func NumberDefault(n float64) DefaultValue {
	return DefaultValue{Kind: DefaultNumber, Number: n}
}

// BoolDefault returns a boolean default value.
func BoolDefault(b bool) DefaultValue {
	return DefaultValue{Kind: DefaultBoolean, Bool: b}
}

// EnumDefault returns a default value naming a member of an enum.
func EnumDefault(enum, member string) DefaultValue {
	return DefaultValue{Kind: DefaultEnum, EnumName: enum, EnumValue: member}
}
