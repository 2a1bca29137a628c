// Package spectcl emits C++ for the SpecTcl tree parameter target. Scalars and
// arrays become CTreeParameter and CTreeParameterArray objects, and every
// generated structure gets an Initialize(basename) that binds its leaves to
// dotted parameter names.
package spectcl

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/frib-daq/genx/internal/codegen/common"
	"github.com/frib-daq/genx/internal/ir"
)

// Generate renders prog and writes BASE.h and BASE.cpp.
func Generate(logger *slog.Logger, base string, prog *ir.Program) error {
	files, err := Render(base, prog)
	if err != nil {
		return err
	}
	if err := common.WriteFiles(logger, files); err != nil {
		return err
	}
	logger.Info("Generated SpecTcl sources", "base", base, "types", len(prog.Types), "instances", len(prog.Instances))
	return nil
}

// Render produces the header and implementation in memory.
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
		{names.Header, "Defines tree parameter structures, instances and API", headerTmpl},
		{names.Source, "C++ Implementation file for SpecTcl", sourceTmpl},
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
