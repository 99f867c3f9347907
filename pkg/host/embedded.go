package host

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script\s*>`)
	langAttrRe    = regexp.MustCompile(`(?i)\blang\s*=\s*["']?([a-z]+)`)
)

// isComponentTemplate reports whether the file keeps its code inside <script> blocks
func isComponentTemplate(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vue", ".svelte":
		return true
	}
	return false
}

// scriptBlock is the organizable part of a component template
type scriptBlock struct {
	offset      int    // byte offset of body within the document
	body        string // script content with leading whitespace removed
	virtualPath string // path whose extension selects the grammar for body
}

// findScriptBlock returns the first non-empty <script> block of text. Leading
// whitespace of the body stays outside the block so it is never rewritten.
func findScriptBlock(path, text string) (scriptBlock, bool) {
	for _, m := range scriptBlockRe.FindAllStringSubmatchIndex(text, -1) {
		attrs := text[m[2]:m[3]]
		start, end := m[4], m[5]
		trimmed := strings.TrimLeft(text[start:end], " \t\r\n")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		ext := ".jsx"
		if lang := langAttrRe.FindStringSubmatch(attrs); lang != nil {
			switch strings.ToLower(lang[1]) {
			case "ts", "typescript":
				ext = ".ts"
			case "tsx":
				ext = ".tsx"
			}
		}

		return scriptBlock{
			offset:      end - len(trimmed),
			body:        trimmed,
			virtualPath: path + ext,
		}, true
	}
	return scriptBlock{}, false
}
