package organizer

import (
	"strings"
)

// Render formats a single import statement back to canonical source text
func Render(imp ImportStatement) string {
	var b strings.Builder
	b.WriteString("import ")
	if imp.IsTypeOnlyImport {
		b.WriteString("type ")
	}

	var clause []string
	if imp.DefaultBinding != "" {
		clause = append(clause, imp.DefaultBinding)
	}
	if imp.NamespaceBinding != "" {
		clause = append(clause, "* as "+imp.NamespaceBinding)
	}
	if imp.HasNamedClause || len(imp.NamedBindings) > 0 {
		clause = append(clause, renderNamed(imp.NamedBindings))
	}
	if len(clause) > 0 {
		b.WriteString(strings.Join(clause, ", "))
		b.WriteString(" from ")
	}

	quote := imp.Quote
	if quote == 0 {
		quote = '"'
	}
	b.WriteByte(quote)
	b.WriteString(imp.ModulePath)
	b.WriteByte(quote)

	if imp.Attributes != "" {
		b.WriteString(" ")
		b.WriteString(imp.Attributes)
	}
	b.WriteString(";")
	return b.String()
}

func renderNamed(bindings []Binding) string {
	if len(bindings) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, renderBinding(binding))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func renderBinding(b Binding) string {
	var s string
	if b.IsTypeOnly {
		s = "type "
	}
	s += b.ImportedName
	if b.aliased() {
		s += " as " + b.LocalName
	}
	return s
}

// renderGroups joins the third-party and local sections, separated by exactly
// one blank line when both are present
func renderGroups(thirdParty, local []ImportStatement, eol string) string {
	var sections []string
	for _, group := range [][]ImportStatement{thirdParty, local} {
		if len(group) == 0 {
			continue
		}
		lines := make([]string, 0, len(group))
		for _, imp := range group {
			lines = append(lines, Render(imp))
		}
		sections = append(sections, strings.Join(lines, eol))
	}
	return strings.Join(sections, eol+eol)
}

// detectEOL returns the line ending used by the first line break of text
func detectEOL(text string) string {
	idx := strings.IndexByte(text, '\n')
	if idx > 0 && text[idx-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
