package organizer

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
)

var (
	// ErrParseFailure is returned when the source cannot be turned into a statement sequence
	ErrParseFailure = fmt.Errorf(errors.ErrMsgFailedToParseFile)
	// ErrMalformedImport marks an import-like statement without a usable module path literal
	ErrMalformedImport = fmt.Errorf(errors.ErrMsgMalformedImport)

	errNotImportDeclaration = fmt.Errorf("not an import declaration")

	// assertClauseRe finds the legacy "assert { ... }" attributes keyword after a module path literal
	assertClauseRe = regexp.MustCompile(`((?:\bfrom|\bimport)\s*(?:"[^"\r\n]*"|'[^'\r\n]*')\s*)assert(\s*\{)`)
)

// maskAssertClauses rewrites the "assert" keyword after a module path to "with" padded to the same
// length, so the grammar sees an import attribute while every offset stays valid for src
func maskAssertClauses(src []byte) []byte {
	return assertClauseRe.ReplaceAll(src, []byte("${1}with  ${2}"))
}

// ParseResult is the leading import run of a file
type ParseResult struct {
	Imports []ImportStatement
	End     int // end offset of the last collected import, 0 when there is none
}

// grammarFor picks the tree-sitter grammar from the file extension. Plain
// TypeScript needs its own grammar because "<T>expr" assertions clash with JSX.
func grammarFor(filePath string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return tsx.GetLanguage()
	}
}

// ParseLeadingImports extracts the unbroken run of import declarations at the top of src
func ParseLeadingImports(src []byte, filePath string) (*ParseResult, error) {
	return New(nil).parse(src, filePath)
}

func (o *Organizer) parse(src []byte, filePath string) (*ParseResult, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammarFor(filePath))

	tree, err := parser.ParseCtx(context.Background(), nil, maskAssertClauses(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: empty syntax tree", ErrParseFailure)
	}

	result := &ParseResult{}
	prevEnd := 0
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() == "comment" {
			continue
		}
		if node.Type() != "import_statement" {
			o.logf(errors.TraceMsgBoundary, node.Type(), node.StartByte())
			break
		}

		imp, err := extractImport(node, src)
		if err != nil {
			o.logf(errors.TraceMsgMalformedImport, node.StartByte(), err)
			break
		}
		imp.LeadingTrivia = string(src[prevEnd:imp.SourceSpan.Start])
		prevEnd = imp.SourceSpan.End

		result.Imports = append(result.Imports, imp)
		result.End = prevEnd
	}

	return result, nil
}

// extractImport converts an import_statement node into an ImportStatement
func extractImport(node *sitter.Node, src []byte) (ImportStatement, error) {
	imp := ImportStatement{
		SourceSpan: Span{Start: int(node.StartByte()), End: int(node.EndByte())},
	}
	if node.HasError() {
		return imp, fmt.Errorf("%w: syntax error inside statement", ErrMalformedImport)
	}

	hasSource := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type":
			imp.IsTypeOnlyImport = true
		case "typeof":
			return imp, fmt.Errorf("%w: typeof imports are not supported", ErrMalformedImport)
		case "import_clause":
			if err := extractClause(child, src, &imp); err != nil {
				return imp, err
			}
		case "string":
			path, quote, err := unquote(child.Content(src))
			if err != nil {
				return imp, err
			}
			imp.ModulePath = path
			imp.Quote = quote
			hasSource = true
		case "import_attribute":
			imp.Attributes = child.Content(src)
		case "import_require_clause":
			return imp, errNotImportDeclaration
		case "comment":
		default:
			if child.IsNamed() {
				return imp, fmt.Errorf("%w: unexpected %s", ErrMalformedImport, child.Type())
			}
		}
	}

	if !hasSource {
		return imp, fmt.Errorf("%w: missing module path", ErrMalformedImport)
	}
	return imp, nil
}

func extractClause(clause *sitter.Node, src []byte, imp *ImportStatement) error {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			imp.DefaultBinding = child.Content(src)
		case "namespace_import":
			name := firstNamedChild(child, "identifier")
			if name == nil {
				return fmt.Errorf("%w: namespace import without a name", ErrMalformedImport)
			}
			imp.NamespaceBinding = name.Content(src)
		case "named_imports":
			imp.HasNamedClause = true
			bindings, err := extractNamed(child, src)
			if err != nil {
				return err
			}
			imp.NamedBindings = bindings
		case "comment":
		default:
			return fmt.Errorf("%w: unexpected %s in import clause", ErrMalformedImport, child.Type())
		}
	}
	return nil
}

func extractNamed(named *sitter.Node, src []byte) ([]Binding, error) {
	var bindings []Binding
	for i := 0; i < int(named.NamedChildCount()); i++ {
		specifier := named.NamedChild(i)
		switch specifier.Type() {
		case "import_specifier":
		case "comment":
			continue
		default:
			return nil, fmt.Errorf("%w: unexpected %s in named imports", ErrMalformedImport, specifier.Type())
		}

		name := specifier.ChildByFieldName("name")
		if name == nil {
			return nil, fmt.Errorf("%w: import specifier without a name", ErrMalformedImport)
		}
		b := Binding{ImportedName: name.Content(src)}
		b.LocalName = b.ImportedName
		if alias := specifier.ChildByFieldName("alias"); alias != nil {
			b.LocalName = alias.Content(src)
		}
		for j := 0; j < int(specifier.ChildCount()); j++ {
			if c := specifier.Child(j); !c.IsNamed() && c.Type() == "type" {
				b.IsTypeOnly = true
			}
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

func firstNamedChild(node *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

// unquote strips the quotes of a module path literal, reporting the quote used
func unquote(lit string) (string, byte, error) {
	if len(lit) < 2 {
		return "", 0, fmt.Errorf("%w: bad module path literal %q", ErrMalformedImport, lit)
	}
	quote := lit[0]
	if (quote != '"' && quote != '\'') || lit[len(lit)-1] != quote {
		return "", 0, fmt.Errorf("%w: bad module path literal %q", ErrMalformedImport, lit)
	}
	return lit[1 : len(lit)-1], quote, nil
}
