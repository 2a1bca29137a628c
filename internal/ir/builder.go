package ir

// Builder accumulates a Program one declaration at a time, in the order the
// front end recognizes them. Only the most recently declared structure can
// receive fields; declaring another structure closes it.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	prog Program

	types     map[string]int
	fields    map[string]int // fields of the open structure
	instances map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		types:     make(map[string]int),
		fields:    make(map[string]int),
		instances: make(map[string]int),
	}
}

// DeclareType opens a new, empty structure named name.
func (b *Builder) DeclareType(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if i, ok := b.types[name]; ok {
		return &DuplicateTypeError{Name: name, Prior: b.prog.Types[i].clone()}
	}
	b.types[name] = len(b.prog.Types)
	b.prog.Types = append(b.prog.Types, TypeDefinition{Name: name})
	b.fields = make(map[string]int)
	return nil
}

// AddField appends f to the structure most recently opened by DeclareType.
func (b *Builder) AddField(f Field) error {
	if len(b.prog.Types) == 0 {
		return ErrNoOpenType
	}
	open := len(b.prog.Types) - 1
	t := &b.prog.Types[open]
	if err := b.check(t.Name, open, f); err != nil {
		return err
	}
	if i, ok := b.fields[f.Name]; ok {
		return &DuplicateFieldError{Type: t.Name, Field: f.Name, Prior: t.Fields[i]}
	}
	b.fields[f.Name] = len(t.Fields)
	t.Fields = append(t.Fields, f)
	return nil
}

// SetLastFieldOptions replaces the options of the field most recently added
// to the open structure.
func (b *Builder) SetLastFieldOptions(opts ValueOptions) error {
	if len(b.prog.Types) == 0 {
		return ErrNoOpenType
	}
	t := &b.prog.Types[len(b.prog.Types)-1]
	if len(t.Fields) == 0 {
		return ErrNoField
	}
	t.Fields[len(t.Fields)-1].Options = opts
	return nil
}

// DeclareInstance appends a top-level instance.
func (b *Builder) DeclareInstance(f Field) error {
	if err := b.check("", len(b.prog.Types), f); err != nil {
		return err
	}
	if i, ok := b.instances[f.Name]; ok {
		return &DuplicateInstanceError{Name: f.Name, Prior: b.prog.Instances[i]}
	}
	b.instances[f.Name] = len(b.prog.Instances)
	b.prog.Instances = append(b.prog.Instances, f)
	return nil
}

// Program returns a snapshot of everything declared so far. Later calls on the
// Builder do not affect the returned value.
func (b *Builder) Program() *Program {
	return b.prog.Clone()
}

// check validates the shape of f. Struct references must resolve to a type
// whose index is below limit, which rules out forward, self and mutual
// references.
func (b *Builder) check(scope string, limit int, f Field) error {
	if f.Name == "" {
		return &InvalidFieldError{Scope: scope, Field: f, Err: ErrEmptyName}
	}
	if !f.Kind.Valid() {
		return &InvalidFieldError{Scope: scope, Field: f, Err: ErrInvalidKind}
	}
	if f.Kind.IsArray() && f.Elements == 0 {
		return &InvalidFieldError{Scope: scope, Field: f, Err: ErrZeroElements}
	}
	if f.Kind.IsStruct() {
		i, ok := b.types[f.TypeName]
		if !ok || i >= limit {
			return &UndefinedTypeError{Scope: scope, Field: f.Name, Referenced: f.TypeName}
		}
	}
	return nil
}
