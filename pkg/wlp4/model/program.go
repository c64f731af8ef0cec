// Copyright 2016-2020, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"io"

	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Program is a bound WLP4 program. Binding annotates the types of the program's syntax tree in place; Procedures
// holds the bound form of each procedure in source order, with the entry point last.
type Program struct {
	File *syntax.File

	Procedures     []*Procedure
	ProcedureTable *ProcedureTable
}

// Root returns the root of the program's annotated derivation tree.
func (p *Program) Root() *syntax.Node {
	return p.File.Root
}

// EntryPoint returns the program's entry point, or nil if the derivation did not include one.
func (p *Program) EntryPoint() *Procedure {
	for i := len(p.Procedures) - 1; i >= 0; i-- {
		if p.Procedures[i].IsEntryPoint {
			return p.Procedures[i]
		}
	}
	return nil
}

func (p *Program) NewDiagnosticWriter(w io.Writer) hcl.DiagnosticWriter {
	return syntax.NewDiagnosticWriter(w)
}
