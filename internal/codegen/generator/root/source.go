package root

import "text/template"

const sourceTemplate = `{{.Header -}}
{{- $ns := .NS -}}
#define IMPLEMENTATION_MODULE
#include "{{.HeaderBase}}"

#include <cmath>
#include <cstdio>
#include <string>
#include <TTree.h>
#include <TBranch.h>

// Class method implementations:

{{range .Types -}}
{{- $q := printf "%s::%s" $ns .Name -}}
// Implementation of methods for class: {{$q}}

ClassImp({{$q}});

{{$q}}::{{.Name}}() {
   Reset();
}

{{$q}}::~{{.Name}}() {}

{{$q}}::{{.Name}}(const {{$q}}& rhs) {
   *this = rhs;
}

{{$q}}& {{$q}}::operator=(const {{$q}}& rhs) {
{{- range .Members}}
{{- if .Loop}}
   for (int i = 0; i < {{.Elements}}; i++) {
       {{.Name}}[i] = rhs.{{.Name}}[i];
   }
{{- else}}
   {{.Name}} = rhs.{{.Name}};
{{- end}}
{{- end}}
   return *this;
}

void {{$q}}::Reset() {
{{- range .Members}}
{{- if .Loop}}
   for (int i = 0; i < {{.Elements}}; i++) {
       {{.Name}}[i]{{.Clear}};
   }
{{- else}}
   {{.Name}}{{.Clear}};
{{- end}}
{{- end}}
}

{{end -}}
//   Instance definitions

namespace {{$ns}} {
struct {
{{range .Instances}}   {{.CType}} {{.Name}}{{.Dim}};
{{end -}}
} instanceStruct;

{{range .Instances}}{{.CType}} (&{{.Name}}){{.Dim}}(instanceStruct.{{.Name}});
{{end}}
// Pointer to the tree:

TTree* pTheTree(0);
}

// SetupEvent - resets the instances

void {{$ns}}::SetupEvent() {
{{- range .Instances}}
{{- if .Loop}}
   for (int i = 0; i < {{.Elements}}; i++) {
      {{$ns}}::{{.Name}}[i]{{.Clear}};
   }
{{- else}}
   {{$ns}}::{{.Name}}{{.Clear}};
{{- end}}
{{- end}}
}

// CommitEvent - fills the tree

void {{$ns}}::CommitEvent() {
   pTheTree->Fill();
}

// Initialize - creates the tree and its branches

void {{$ns}}::Initialize() {
   {{$ns}}::pTheTree = new TTree("{{$ns}}", "{{$ns}}");
{{- range .Instances}}
{{- if .IsValue}}
   {{$ns}}::pTheTree->Branch("{{.Name}}", &{{$ns}}::instanceStruct.{{.Name}}, "{{.Name}}/D");
{{- else if .IsArray}}
   {{$ns}}::pTheTree->Branch("{{.Name}}", {{$ns}}::instanceStruct.{{.Name}}, "{{.Name}}[{{.Elements}}]/D");
{{- else if .IsStructure}}
   {{$ns}}::pTheTree->Branch("{{.Name}}", "{{$ns}}::{{.TypeName}}", &{{$ns}}::instanceStruct.{{.Name}});
{{- else}}
   for (int i = 0; i < {{.Elements}}; i++) {
       char index[{{.IndexBuf}}];
       snprintf(index, sizeof(index), "_{{.IndexFormat}}", i);
       std::string branchName = std::string("{{.Name}}") + index;
       {{$ns}}::pTheTree->Branch(branchName.c_str(), "{{$ns}}::{{.TypeName}}", &{{$ns}}::instanceStruct.{{.Name}}[i]);
   }
{{- end}}
{{- end}}
}
`

var sourceTmpl = template.Must(template.New("root source").Parse(sourceTemplate))
