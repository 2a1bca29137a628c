// Package root emits C++ for the CERN ROOT columnar target: one TObject class
// per declared structure, the instances packed into a single block, and a
// TTree with a branch per instance (one per element for arrays of structs).
package root

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/frib-daq/genx/internal/codegen/common"
	"github.com/frib-daq/genx/internal/ir"
)

// Generate renders prog and writes BASE.h, BASE-linkdef.h and BASE.cpp.
func Generate(logger *slog.Logger, base string, prog *ir.Program) error {
	files, err := Render(base, prog)
	if err != nil {
		return err
	}
	if err := common.WriteFiles(logger, files); err != nil {
		return err
	}
	logger.Info("Generated ROOT sources", "base", base, "types", len(prog.Types), "instances", len(prog.Instances))
	return nil
}

// Render produces the generated files in memory, in the order they are
// written.
func Render(base string, prog *ir.Program) ([]common.File, error) {
	digest, err := common.Digest(prog)
	if err != nil {
		return nil, err
	}
	names := FileNames(base)
	v := newView(base, prog)

	specs := []struct {
		name  string
		brief string
		tmpl  *template.Template
	}{
		{names.Header, "Defines types, instances and API", headerTmpl},
		{names.LinkDef, "Linkdef file for dictionaries", linkDefTmpl},
		{names.Source, "C++ Implementation file for root", sourceTmpl},
	}

	files := make([]common.File, 0, len(specs))
	for _, s := range specs {
		v.Header, err = common.FileHeader(Program, filepath.Base(s.name), s.brief, digest)
		if err != nil {
			return nil, fmt.Errorf("file header: %w", err)
		}
		content, err := common.Execute(s.tmpl, v)
		if err != nil {
			return nil, err
		}
		files = append(files, common.File{Name: s.name, Content: content})
	}
	return files, nil
}
