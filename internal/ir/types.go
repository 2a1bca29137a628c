// Package ir holds the intermediate representation shared by the declaration
// front end and the code generation backends: named structure types, the
// top-level instances, and the per-value histogram options attached to them.
package ir

// Kind identifies the shape of a declared field or instance.
//
// The set is closed. The numeric values are the wire tags used by the codec.
type Kind uint32

const (
	KindValue Kind = iota
	KindArray
	KindStructure
	KindStructArray
)

// Valid reports whether k is one of the four declared kinds.
func (k Kind) Valid() bool {
	return k <= KindStructArray
}

// IsArray reports whether fields of this kind carry an element count.
func (k Kind) IsArray() bool {
	return k == KindArray || k == KindStructArray
}

// IsStruct reports whether fields of this kind reference a declared type.
func (k Kind) IsStruct() bool {
	return k == KindStructure || k == KindStructArray
}

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindArray:
		return "array"
	case KindStructure:
		return "struct"
	case KindStructArray:
		return "array of struct"
	default:
		return "** Not set ***"
	}
}

// ValueOptions is the histogram metadata of a scalar or array leaf.
// Structure kinds carry it too but nothing reads it there.
type ValueOptions struct {
	Low   float64 `json:"low" yaml:"low"`
	High  float64 `json:"high" yaml:"high"`
	Bins  uint32  `json:"bins" yaml:"bins"`
	Units string  `json:"units" yaml:"units"`
}

// DefaultValueOptions returns low=0, high=100, bins=100 and no units.
func DefaultValueOptions() ValueOptions {
	return ValueOptions{Low: 0, High: 100, Bins: 100}
}

// Field is one declared item: a member of a TypeDefinition or a top-level
// instance. TypeName is set only for struct kinds and Elements only for array
// kinds; use the constructors below to get a coherent shape.
type Field struct {
	Name     string       `json:"name" yaml:"name"`
	Kind     Kind         `json:"kind" yaml:"kind"`
	TypeName string       `json:"typeName,omitempty" yaml:"typeName,omitempty"`
	Elements uint32       `json:"elements,omitempty" yaml:"elements,omitempty"`
	Options  ValueOptions `json:"options" yaml:"options"`
}

// Value declares a scalar leaf.
func Value(name string, opts ValueOptions) Field {
	return Field{Name: name, Kind: KindValue, Options: opts}
}

// Array declares a fixed-size array of scalars.
func Array(name string, elements uint32, opts ValueOptions) Field {
	return Field{Name: name, Kind: KindArray, Elements: elements, Options: opts}
}

// Structure declares a single member of a previously declared type.
func Structure(name, typeName string) Field {
	return Field{Name: name, Kind: KindStructure, TypeName: typeName, Options: DefaultValueOptions()}
}

// StructArray declares a fixed-size array of a previously declared type.
func StructArray(name, typeName string, elements uint32) Field {
	return Field{Name: name, Kind: KindStructArray, TypeName: typeName, Elements: elements, Options: DefaultValueOptions()}
}

// TypeDefinition is a named structure. Field order is declaration order and
// is preserved in every generated artifact.
type TypeDefinition struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Program is the full model handed from the front end to a backend.
type Program struct {
	Types     []TypeDefinition `json:"types" yaml:"types"`
	Instances []Field          `json:"instances" yaml:"instances"`
}

// Clone returns a deep copy of p.
func (p *Program) Clone() *Program {
	out := &Program{
		Types:     make([]TypeDefinition, len(p.Types)),
		Instances: cloneFields(p.Instances),
	}
	for i, t := range p.Types {
		out.Types[i] = t.clone()
	}
	return out
}

func (t TypeDefinition) clone() TypeDefinition {
	return TypeDefinition{Name: t.Name, Fields: cloneFields(t.Fields)}
}

func cloneFields(fs []Field) []Field {
	out := make([]Field, len(fs))
	copy(out, fs)
	return out
}
