package organizer

// Binding is one entry of an import's named-imports braces
type Binding struct {
	ImportedName string // name exported by the module
	LocalName    string // name bound in this file, equal to ImportedName unless aliased
	IsTypeOnly   bool   // inline "type" modifier
}

// DisplayName is the name as rendered: the alias if aliased, else the imported name
func (b Binding) DisplayName() string {
	if b.LocalName != "" {
		return b.LocalName
	}
	return b.ImportedName
}

func (b Binding) aliased() bool {
	return b.LocalName != "" && b.LocalName != b.ImportedName
}

// ImportStatement represents a single import declaration from the leading import run
type ImportStatement struct {
	ModulePath       string    // literal between the quotes
	Quote            byte      // quote character used in the source, ' or "
	DefaultBinding   string    // empty if there is no default import
	NamespaceBinding string    // empty if there is no "* as name"
	NamedBindings    []Binding // entries inside the braces, possibly empty
	HasNamedClause   bool      // braces are present, even if empty
	IsTypeOnlyImport bool      // "import type ..."
	Attributes       string    // raw import attributes clause, e.g. `with { type: "json" }`
	SourceSpan       Span      // byte offsets in the original text
	LeadingTrivia    string    // comments and whitespace between the previous import (or file start) and this one
}

// withBindings returns a copy of imp whose named bindings are replaced
func (imp ImportStatement) withBindings(bindings []Binding) ImportStatement {
	imp.NamedBindings = bindings
	return imp
}

// ImportGroup represents the two buckets imports are split into
type ImportGroup int

const (
	ThirdPartyGroup ImportGroup = iota
	LocalGroup
)

func (g ImportGroup) String() string {
	switch g {
	case LocalGroup:
		return "local"
	default:
		return "third-party"
	}
}
