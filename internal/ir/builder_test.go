package ir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frib-daq/genx/internal/ir"
)

func hitProgram(t *testing.T) *ir.Builder {
	t.Helper()
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("Hit"))
	require.NoError(t, b.AddField(ir.Value("energy", ir.DefaultValueOptions())))
	require.NoError(t, b.AddField(ir.Array("samples", 4, ir.DefaultValueOptions())))
	require.NoError(t, b.DeclareInstance(ir.Structure("hit", "Hit")))
	return b
}

func TestBuilderPreservesDeclarationOrder(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("T2"))
	require.NoError(t, b.AddField(ir.Value("x", ir.DefaultValueOptions())))
	require.NoError(t, b.DeclareType("T1"))
	require.NoError(t, b.AddField(ir.Value("a", ir.DefaultValueOptions())))
	require.NoError(t, b.AddField(ir.Array("b", 3, ir.DefaultValueOptions())))
	require.NoError(t, b.AddField(ir.Structure("c", "T2")))

	p := b.Program()
	require.Len(t, p.Types, 2)
	assert.Equal(t, "T2", p.Types[0].Name)
	assert.Equal(t, "T1", p.Types[1].Name)

	var names []string
	for _, f := range p.Types[1].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, ir.KindStructure, p.Types[1].Fields[2].Kind)
	assert.Equal(t, "T2", p.Types[1].Fields[2].TypeName)
}

func TestDuplicateType(t *testing.T) {
	b := hitProgram(t)

	err := b.DeclareType("Hit")
	var dup *ir.DuplicateTypeError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "Hit", dup.Prior.Name)
	assert.Len(t, dup.Prior.Fields, 2)
	assert.Contains(t, err.Error(), "Struct Hit is already defined as:")
	assert.Contains(t, err.Error(), "Name: samples")

	assert.Len(t, b.Program().Types, 1)
}

func TestDuplicateTypeDoesNotReopen(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("A"))
	require.NoError(t, b.AddField(ir.Value("x", ir.DefaultValueOptions())))
	require.NoError(t, b.DeclareType("B"))
	require.Error(t, b.DeclareType("A"))

	// B is still the open structure.
	require.NoError(t, b.AddField(ir.Value("y", ir.DefaultValueOptions())))
	p := b.Program()
	assert.Len(t, p.Types[0].Fields, 1)
	assert.Len(t, p.Types[1].Fields, 1)
}

func TestDuplicateField(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("Hit"))
	require.NoError(t, b.AddField(ir.Value("energy", ir.ValueOptions{Low: 1, High: 2, Bins: 3, Units: "MeV"})))

	err := b.AddField(ir.Array("energy", 2, ir.DefaultValueOptions()))
	var dup *ir.DuplicateFieldError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "Hit", dup.Type)
	assert.Equal(t, ir.KindValue, dup.Prior.Kind)
	assert.Equal(t, "MeV", dup.Prior.Options.Units)

	p := b.Program()
	require.Len(t, p.Types[0].Fields, 1)
	assert.Equal(t, ir.KindValue, p.Types[0].Fields[0].Kind)
}

func TestFieldNamesAreScopedPerType(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("A"))
	require.NoError(t, b.AddField(ir.Value("x", ir.DefaultValueOptions())))
	require.NoError(t, b.DeclareType("B"))
	assert.NoError(t, b.AddField(ir.Value("x", ir.DefaultValueOptions())))
}

func TestDuplicateInstance(t *testing.T) {
	b := hitProgram(t)

	err := b.DeclareInstance(ir.Value("hit", ir.DefaultValueOptions()))
	var dup *ir.DuplicateInstanceError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, ir.KindStructure, dup.Prior.Kind)
	assert.Contains(t, err.Error(), "Duplicate instance name: hit")
	assert.Len(t, b.Program().Instances, 1)
}

func TestInstanceNamespaceIsSeparate(t *testing.T) {
	b := hitProgram(t)
	assert.NoError(t, b.DeclareInstance(ir.Value("Hit", ir.DefaultValueOptions())))
	assert.NoError(t, b.DeclareInstance(ir.Value("energy", ir.DefaultValueOptions())))
}

func TestAddFieldWithoutType(t *testing.T) {
	b := ir.NewBuilder()
	assert.ErrorIs(t, b.AddField(ir.Value("x", ir.DefaultValueOptions())), ir.ErrNoOpenType)
	assert.ErrorIs(t, b.SetLastFieldOptions(ir.DefaultValueOptions()), ir.ErrNoOpenType)
	require.NoError(t, b.DeclareType("T"))
	assert.ErrorIs(t, b.SetLastFieldOptions(ir.DefaultValueOptions()), ir.ErrNoField)
}

func TestSetLastFieldOptions(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("T"))
	require.NoError(t, b.AddField(ir.Value("a", ir.DefaultValueOptions())))
	require.NoError(t, b.AddField(ir.Value("b", ir.DefaultValueOptions())))

	first := ir.ValueOptions{Low: -1, High: 1, Bins: 16, Units: "V"}
	last := ir.ValueOptions{Low: 0, High: 4096, Bins: 4096, Units: "ch"}
	require.NoError(t, b.SetLastFieldOptions(first))
	require.NoError(t, b.SetLastFieldOptions(last))

	p := b.Program()
	assert.Equal(t, ir.DefaultValueOptions(), p.Types[0].Fields[0].Options)
	assert.Equal(t, last, p.Types[0].Fields[1].Options)
}

func TestStructReferencesMustBeDeclaredFirst(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *ir.Builder) error
	}{
		{
			name: "forward reference",
			build: func(b *ir.Builder) error {
				if err := b.DeclareType("A"); err != nil {
					return err
				}
				return b.AddField(ir.Structure("b", "B"))
			},
		},
		{
			name: "self reference",
			build: func(b *ir.Builder) error {
				if err := b.DeclareType("A"); err != nil {
					return err
				}
				return b.AddField(ir.StructArray("children", "A", 2))
			},
		},
		{
			name: "undeclared instance type",
			build: func(b *ir.Builder) error {
				return b.DeclareInstance(ir.Structure("x", "Missing"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(ir.NewBuilder())
			var undef *ir.UndefinedTypeError
			assert.True(t, errors.As(err, &undef), "got %v", err)
		})
	}
}

func TestZeroElementArraysAreRejected(t *testing.T) {
	b := ir.NewBuilder()
	require.NoError(t, b.DeclareType("T"))
	assert.ErrorIs(t, b.AddField(ir.Array("a", 0, ir.DefaultValueOptions())), ir.ErrZeroElements)
	assert.ErrorIs(t, b.DeclareInstance(ir.StructArray("ts", "T", 0)), ir.ErrZeroElements)
	assert.Empty(t, b.Program().Instances)
}

func TestInvalidKindIsRejected(t *testing.T) {
	b := ir.NewBuilder()
	err := b.DeclareInstance(ir.Field{Name: "x", Kind: ir.Kind(7)})
	assert.ErrorIs(t, err, ir.ErrInvalidKind)
}

func TestProgramIsASnapshot(t *testing.T) {
	b := hitProgram(t)
	p := b.Program()
	require.NoError(t, b.AddField(ir.Value("time", ir.DefaultValueOptions())))
	assert.Len(t, p.Types[0].Fields, 2)
	assert.Len(t, b.Program().Types[0].Fields, 3)
}

func TestValidate(t *testing.T) {
	p := hitProgram(t).Program()
	assert.NoError(t, p.Validate())

	p.Instances = append(p.Instances, ir.Structure("hit", "Hit"))
	var dup *ir.DuplicateInstanceError
	assert.True(t, errors.As(p.Validate(), &dup))

	q := &ir.Program{Types: []ir.TypeDefinition{
		{Name: "A", Fields: []ir.Field{ir.Structure("b", "B")}},
		{Name: "B", Fields: []ir.Field{ir.Structure("a", "A")}},
	}}
	var undef *ir.UndefinedTypeError
	assert.True(t, errors.As(q.Validate(), &undef))
}
