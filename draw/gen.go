//go:build ignore

// gen renders isa.DrawOps into the drawing instructions of package draw. Every
// operation of the same arity shares one template, so operations only differ in
// name and instruction word.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/clktmr/mlogv32/isa"
)

const header = "// Code generated by gen.go; DO NOT EDIT.\n\n"

// One assembler macro per arity. Each loads exactly n argument registers and
// emits the operation's instruction word.
var asmTemplate = `//go:build mlogv32

#include "textflag.h"
{{ range $n := .Arities }}
#define DRAW{{ $n }}(name, insn{{ range regs $n }}, p{{ . }}{{ end }}) \
	TEXT name(SB), NOSPLIT|NOFRAME, $0-{{ mul $n 4 }}; \
{{- range regs $n }}
	MOVWU	p{{ . }}+{{ mul . 4 }}(FP), A{{ . }}; \
{{- end }}
	WORD	$insn; \
	RET
{{ end }}
{{ range .Ops -}}
DRAW{{ .Arity }}(·{{ .Name }}, {{ printf "0x%08x" .Word }}{{ range .Args }}, {{ . }}{{ end }})
{{ end -}}
`

var declTemplate = `//go:build mlogv32 && riscv64

package draw
{{ range .Ops }}
// {{ .Name }} executes the {{ .Name }} drawing instruction.
func {{ .Name }}({{ params . }})
{{ end -}}
`

var hostTemplate = `//go:build !(mlogv32 && riscv64)

package draw

import "github.com/clktmr/mlogv32/hart"
{{ range .Ops }}
// {{ .Name }} executes the {{ .Name }} drawing instruction.
func {{ .Name }}({{ params . }}) {
{{- if .Arity }}
	regs := hart.Regs{ {{- stage . -}} }
	hart.Raise({{ printf "0x%08x" .Word }}, &regs, {{ .Arity }})
{{- else }}
	hart.Raise({{ printf "0x%08x" .Word }}, &hart.Regs{}, 0)
{{- end }}
}
{{ end -}}
`

// Arguments with a type other than uint32.
var paramTypes = map[string]string{
	"kind": "ImageType",
}

type op struct {
	isa.DrawOp
	Word isa.Insn
}

func params(o op) string {
	var s []string
	for i, name := range o.Args {
		typ := paramTypes[name]
		if typ == "" {
			typ = "uint32"
		}
		last := i == len(o.Args)-1
		if !last && paramTypes[o.Args[i+1]] == paramTypes[name] {
			s = append(s, name)
		} else {
			s = append(s, name+" "+typ)
		}
	}
	return strings.Join(s, ", ")
}

func stage(o op) string {
	var s []string
	for _, name := range o.Args {
		if paramTypes[name] != "" {
			name = "uint32(" + name + ")"
		}
		s = append(s, name)
	}
	return strings.Join(s, ", ")
}

func regs(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func render(tmpl string, data any, gofmt bool) []byte {
	funcs := template.FuncMap{
		"params": params,
		"stage":  stage,
		"regs":   regs,
		"mul":    func(a, b int) int { return a * b },
	}
	t, err := template.New("").Funcs(funcs).Parse(tmpl)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBufferString(header)
	err = t.Execute(source, data)
	if err != nil {
		log.Fatalln(err)
	}
	if !gofmt {
		return source.Bytes()
	}
	formatted, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	return formatted
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	var data struct {
		Arities []int
		Ops     []op
	}
	for n := 0; n <= isa.MaxDrawArgs; n++ {
		data.Arities = append(data.Arities, n)
	}
	for _, o := range isa.DrawOps {
		if o.Arity() > isa.MaxDrawArgs {
			log.Fatalf("%s: too many arguments", o.Name)
		}
		data.Ops = append(data.Ops, op{o, o.Insn()})
	}

	files := []struct {
		name  string
		tmpl  string
		gofmt bool
	}{
		{"zdraw_riscv64.s", asmTemplate, false},
		{"zdraw_mlogv32.go", declTemplate, true},
		{"zdraw_other.go", hostTemplate, true},
	}
	for _, f := range files {
		err := os.WriteFile(f.name, render(f.tmpl, data, f.gofmt), 0644)
		if err != nil {
			log.Fatalln(err)
		}
	}
}
