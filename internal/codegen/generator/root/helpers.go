package root

import (
	"fmt"
	"path/filepath"

	"github.com/frib-daq/genx/internal/codegen/common"
	"github.com/frib-daq/genx/internal/ir"
)

// Program is the name stamped into generated file headers.
const Program = "rootgenerate"

// scalarType is the ROOT type of value and array leaves.
const scalarType = "Double_t"

// member is the template view of one field or instance.
type member struct {
	Name     string
	Kind     ir.Kind
	TypeName string
	Elements uint32
}

func newMember(f ir.Field) member {
	return member{Name: f.Name, Kind: f.Kind, TypeName: f.TypeName, Elements: f.Elements}
}

func newMembers(fs []ir.Field) []member {
	out := make([]member, len(fs))
	for i, f := range fs {
		out[i] = newMember(f)
	}
	return out
}

func (m member) IsValue() bool       { return m.Kind == ir.KindValue }
func (m member) IsArray() bool       { return m.Kind == ir.KindArray }
func (m member) IsStructure() bool   { return m.Kind == ir.KindStructure }
func (m member) IsStructArray() bool { return m.Kind == ir.KindStructArray }

// Loop reports whether statements on this member iterate over its elements.
func (m member) Loop() bool { return m.Kind.IsArray() }

// CType is the declared C++ type of the member, without the dimension.
func (m member) CType() string {
	if m.Kind.IsStruct() {
		return m.TypeName
	}
	return scalarType
}

// Dim is the array declarator suffix. Array kinds always get one, even with
// a single element, so element loops stay well formed.
func (m member) Dim() string {
	if m.Kind.IsArray() {
		return fmt.Sprintf("[%d]", m.Elements)
	}
	return ""
}

// Clear is the statement suffix that puts one element in its cleared state.
func (m member) Clear() string {
	if m.Kind.IsStruct() {
		return ".Reset()"
	}
	return " = NAN"
}

// IndexFormat is the printf conversion for this member's element suffix.
func (m member) IndexFormat() string { return common.IndexFormat(m.Elements) }

// IndexBuf is the size of the buffer holding "_" + padded index + NUL.
func (m member) IndexBuf() int { return common.IndexWidth(m.Elements) + 2 }

type classView struct {
	Name    string
	Members []member
}

// view is the data shared by all three templates.
type view struct {
	Header     string
	NS         string
	Guard      string
	HeaderBase string
	Types      []classView
	Instances  []member
}

// Files names the artifacts produced for an output base name.
type Files struct {
	Header  string
	Source  string
	LinkDef string
}

func FileNames(base string) Files {
	return Files{
		Header:  base + ".h",
		Source:  base + ".cpp",
		LinkDef: base + "-linkdef.h",
	}
}

func newView(base string, prog *ir.Program) view {
	ns := common.Identifier(common.BaseName(base))
	v := view{
		NS:         ns,
		Guard:      ns + "_h",
		HeaderBase: filepath.Base(FileNames(base).Header),
		Types:      make([]classView, len(prog.Types)),
		Instances:  newMembers(prog.Instances),
	}
	for i, t := range prog.Types {
		v.Types[i] = classView{Name: t.Name, Members: newMembers(t.Fields)}
	}
	return v
}
