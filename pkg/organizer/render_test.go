package organizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		imp  ImportStatement
		want string
	}{
		{
			name: "side effect",
			imp:  ImportStatement{ModulePath: "./styles.css", Quote: '"'},
			want: `import "./styles.css";`,
		},
		{
			name: "default",
			imp:  ImportStatement{ModulePath: "react", Quote: '"', DefaultBinding: "React"},
			want: `import React from "react";`,
		},
		{
			name: "namespace keeps single quotes",
			imp:  ImportStatement{ModulePath: "node:path", Quote: '\'', NamespaceBinding: "path"},
			want: `import * as path from 'node:path';`,
		},
		{
			name: "named with alias",
			imp: ImportStatement{ModulePath: "m", Quote: '"', HasNamedClause: true, NamedBindings: []Binding{
				{ImportedName: "a", LocalName: "a"},
				{ImportedName: "b", LocalName: "c"},
			}},
			want: `import { a, b as c } from "m";`,
		},
		{
			name: "default and named",
			imp: ImportStatement{ModulePath: "react", Quote: '"', DefaultBinding: "React", HasNamedClause: true, NamedBindings: []Binding{
				{ImportedName: "useState", LocalName: "useState"},
			}},
			want: `import React, { useState } from "react";`,
		},
		{
			name: "default and namespace",
			imp:  ImportStatement{ModulePath: "m", Quote: '"', DefaultBinding: "D", NamespaceBinding: "N"},
			want: `import D, * as N from "m";`,
		},
		{
			name: "type only import",
			imp: ImportStatement{ModulePath: "./types", Quote: '"', IsTypeOnlyImport: true, HasNamedClause: true, NamedBindings: []Binding{
				{ImportedName: "A", LocalName: "A"},
			}},
			want: `import type { A } from "./types";`,
		},
		{
			name: "inline type binding",
			imp: ImportStatement{ModulePath: "m", Quote: '"', HasNamedClause: true, NamedBindings: []Binding{
				{ImportedName: "T", LocalName: "U", IsTypeOnly: true},
			}},
			want: `import { type T as U } from "m";`,
		},
		{
			name: "empty braces",
			imp:  ImportStatement{ModulePath: "m", Quote: '"', HasNamedClause: true},
			want: `import {} from "m";`,
		},
		{
			name: "attributes",
			imp:  ImportStatement{ModulePath: "./data.json", Quote: '"', DefaultBinding: "data", Attributes: `with { type: "json" }`},
			want: `import data from "./data.json" with { type: "json" };`,
		},
		{
			name: "missing quote defaults to double",
			imp:  ImportStatement{ModulePath: "zod"},
			want: `import "zod";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, Render(tt.imp))
		})
	}
}

func TestRenderGroups(t *testing.T) {
	req := require.New(t)
	tp := []ImportStatement{{ModulePath: "react", Quote: '"'}, {ModulePath: "zod", Quote: '"'}}
	local := []ImportStatement{{ModulePath: "./a", Quote: '"'}}

	req.Equal("import \"react\";\nimport \"zod\";\n\nimport \"./a\";", renderGroups(tp, local, "\n"))
	req.Equal("import \"react\";\r\nimport \"zod\";", renderGroups(tp, nil, "\r\n"))
	req.Equal("import \"./a\";", renderGroups(nil, local, "\n"))
	req.Equal("", renderGroups(nil, nil, "\n"))
}

func TestDetectEOL(t *testing.T) {
	req := require.New(t)
	req.Equal("\n", detectEOL(""))
	req.Equal("\n", detectEOL("a\nb"))
	req.Equal("\r\n", detectEOL("a\r\nb\n"))
	req.Equal("\n", detectEOL("\nfoo"))
}
