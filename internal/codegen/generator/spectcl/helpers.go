package spectcl

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/frib-daq/genx/internal/codegen/common"
	"github.com/frib-daq/genx/internal/ir"
)

// Program is the name stamped into generated file headers.
const Program = "specgenerate"

const (
	parameterType      = "CTreeParameter"
	parameterArrayType = "CTreeParameterArray"
)

type member struct {
	Name     string
	Kind     ir.Kind
	TypeName string
	Elements uint32
	Options  ir.ValueOptions
}

func newMembers(fs []ir.Field) []member {
	out := make([]member, len(fs))
	for i, f := range fs {
		out[i] = member{Name: f.Name, Kind: f.Kind, TypeName: f.TypeName, Elements: f.Elements, Options: f.Options}
	}
	return out
}

func (m member) IsValue() bool     { return m.Kind == ir.KindValue }
func (m member) IsArray() bool     { return m.Kind == ir.KindArray }
func (m member) IsStructure() bool { return m.Kind == ir.KindStructure }

// CType is the member's declared type. Leaves are tree parameter objects that
// register themselves with the framework; an array leaf is a single
// CTreeParameterArray object, not a C array.
func (m member) CType() string {
	switch m.Kind {
	case ir.KindValue:
		return parameterType
	case ir.KindArray:
		return parameterArrayType
	default:
		return m.TypeName
	}
}

// Dim is the C array declarator, present only for arrays of structs.
func (m member) Dim() string {
	if m.Kind == ir.KindStructArray {
		return fmt.Sprintf("[%d]", m.Elements)
	}
	return ""
}

func (m member) Bins() uint32  { return m.Options.Bins }
func (m member) Low() string   { return cppDouble(m.Options.Low) }
func (m member) High() string  { return cppDouble(m.Options.High) }
func (m member) Units() string { return common.CppString(m.Options.Units) }

// Literal is the quoted member name, the root of its dotted parameter path
// when it is a top-level instance.
func (m member) Literal() string { return common.CppString(m.Name) }

func (m member) IndexFormat() string { return common.IndexFormat(m.Elements) }

// IndexBuf holds the padded index and its NUL.
func (m member) IndexBuf() int { return common.IndexWidth(m.Elements) + 1 }

// cppDouble renders v as a C++ double expression.
func cppDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NAN"
	case math.IsInf(v, 1):
		return "INFINITY"
	case math.IsInf(v, -1):
		return "-INFINITY"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type structView struct {
	Name    string
	Members []member
}

type view struct {
	Header     string
	Guard      string
	HeaderBase string
	Types      []structView
	Instances  []member
}

// Files names the artifacts produced for an output base name.
type Files struct {
	Header string
	Source string
}

func FileNames(base string) Files {
	return Files{Header: base + ".h", Source: base + ".cpp"}
}

func newView(base string, prog *ir.Program) view {
	v := view{
		Guard:      common.Identifier(common.BaseName(base)) + "_h",
		HeaderBase: filepath.Base(FileNames(base).Header),
		Types:      make([]structView, len(prog.Types)),
		Instances:  newMembers(prog.Instances),
	}
	for i, t := range prog.Types {
		v.Types[i] = structView{Name: t.Name, Members: newMembers(t.Fields)}
	}
	return v
}
