package load

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// itemDoc is the wire form of an Item, discriminated by Type.
type itemDoc struct {
	Type    Kind      `json:"type" yaml:"type"`
	Name    string    `json:"name" yaml:"name"`
	Columns []*Column `json:"columns,omitempty" yaml:"columns,omitempty"`
	Items   []string  `json:"items,omitempty" yaml:"items,omitempty"`
}

func (d *itemDoc) item() (Item, error) {
	switch d.Type {
	case KindTable:
		return &Table{Name: d.Name, Columns: d.Columns}, nil
	case KindEnum:
		return &Enum{Name: d.Name, Items: d.Items}, nil
	default:
		return nil, fmt.Errorf("load: unknown item type %q for %q", d.Type, d.Name)
	}
}

// MarshalItems encodes the given items into JSON that can be decoded
// back with UnmarshalItems.
func MarshalItems(items []Item) ([]byte, error) {
	return json.Marshal(items)
}

// UnmarshalItems decodes a JSON list of items.
func UnmarshalItems(buf []byte) ([]Item, error) {
	var docs []*itemDoc
	if err := json.Unmarshal(buf, &docs); err != nil {
		return nil, fmt.Errorf("load: decode items: %w", err)
	}
	return fromDocs(docs)
}

// UnmarshalItemsYAML decodes a YAML list of items. The document shape
// is the same as the JSON one.
func UnmarshalItemsYAML(buf []byte) ([]Item, error) {
	var docs []*itemDoc
	if err := yaml.Unmarshal(buf, &docs); err != nil {
		return nil, fmt.Errorf("load: decode items: %w", err)
	}
	return fromDocs(docs)
}

func fromDocs(docs []*itemDoc) ([]Item, error) {
	items := make([]Item, 0, len(docs))
	for i, d := range docs {
		if d == nil {
			return nil, fmt.Errorf("load: item %d is empty", i)
		}
		it, err := d.item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// MarshalJSON implements json.Marshaler.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemDoc{Type: KindTable, Name: t.Name, Columns: t.Columns})
}

// MarshalJSON implements json.Marshaler.
func (e *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemDoc{Type: KindEnum, Name: e.Name, Items: e.Items})
}

// MarshalJSON implements json.Marshaler.
func (a Attribute) MarshalJSON() ([]byte, error) {
	var v any = a.Flag
	if a.Kind == AttrDefault {
		v = a.Default
	}
	return json.Marshal(struct {
		Type  AttributeKind `json:"type"`
		Value any           `json:"value"`
	}{a.Kind, v})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Attribute) UnmarshalJSON(buf []byte) error {
	var doc struct {
		Type  AttributeKind   `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		return err
	}
	return a.decode(doc.Type, len(doc.Value) > 0, func(v any) error {
		return json.Unmarshal(doc.Value, v)
	})
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Attribute) UnmarshalYAML(n *yaml.Node) error {
	var doc struct {
		Type  AttributeKind `yaml:"type"`
		Value yaml.Node     `yaml:"value"`
	}
	if err := n.Decode(&doc); err != nil {
		return err
	}
	return a.decode(doc.Type, !doc.Value.IsZero(), doc.Value.Decode)
}

func (a *Attribute) decode(kind AttributeKind, has bool, value func(any) error) error {
	if !has {
		return fmt.Errorf("load: attribute %q: missing value", kind)
	}
	switch kind {
	case AttrDefault:
		dv := &DefaultValue{}
		if err := value(dv); err != nil {
			return err
		}
		*a = Attribute{Kind: kind, Default: dv}
	case AttrNull, AttrPrimaryKey, AttrUnique, AttrAutoIncrement:
		var b bool
		if err := value(&b); err != nil {
			return fmt.Errorf("load: attribute %q: %w", kind, err)
		}
		*a = Attribute{Kind: kind, Flag: b}
	default:
		return fmt.Errorf("load: unknown attribute type %q", kind)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v DefaultValue) MarshalJSON() ([]byte, error) {
	doc := struct {
		Type      DefaultKind `json:"type"`
		Data      any         `json:"data,omitempty"`
		EnumName  string      `json:"enum_name,omitempty"`
		EnumValue string      `json:"enum_value,omitempty"`
	}{Type: v.Kind}
	switch v.Kind {
	case DefaultString:
		doc.Data = v.Text
	case DefaultNumber:
		doc.Data = v.Number
	case DefaultBoolean:
		doc.Data = v.Bool
	case DefaultEnum:
		doc.EnumName, doc.EnumValue = v.EnumName, v.EnumValue
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *DefaultValue) UnmarshalJSON(buf []byte) error {
	var doc struct {
		Type      DefaultKind     `json:"type"`
		Data      json.RawMessage `json:"data"`
		EnumName  string          `json:"enum_name"`
		EnumValue string          `json:"enum_value"`
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		return err
	}
	return v.decode(doc.Type, doc.EnumName, doc.EnumValue, len(doc.Data) > 0, func(t any) error {
		return json.Unmarshal(doc.Data, t)
	})
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *DefaultValue) UnmarshalYAML(n *yaml.Node) error {
	var doc struct {
		Type      DefaultKind `yaml:"type"`
		Data      yaml.Node   `yaml:"data"`
		EnumName  string      `yaml:"enum_name"`
		EnumValue string      `yaml:"enum_value"`
	}
	if err := n.Decode(&doc); err != nil {
		return err
	}
	return v.decode(doc.Type, doc.EnumName, doc.EnumValue, !doc.Data.IsZero(), doc.Data.Decode)
}

func (v *DefaultValue) decode(kind DefaultKind, enum, member string, has bool, data func(any) error) error {
	*v = DefaultValue{Kind: kind}
	var target any
	switch kind {
	case DefaultEnum:
		v.EnumName, v.EnumValue = enum, member
		return nil
	case DefaultString:
		target = &v.Text
	case DefaultNumber:
		target = &v.Number
	case DefaultBoolean:
		target = &v.Bool
	default:
		return fmt.Errorf("load: unknown default value type %q", kind)
	}
	if !has {
		return fmt.Errorf("load: default value %q: missing data", kind)
	}
	if err := data(target); err != nil {
		return fmt.Errorf("load: default value %q: %w", kind, err)
	}
	return nil
}
