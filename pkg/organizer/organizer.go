package organizer

import (
	"sort"
	"strings"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
)

// Logger receives human-readable trace lines; *log.Logger satisfies it
type Logger interface {
	Printf(format string, v ...any)
}

// Organizer reorganizes the leading import block of a document.
// It keeps no state between calls and may be shared between goroutines.
type Organizer struct {
	logger Logger
}

// New creates an Organizer writing its trace to logger, which may be nil
func New(logger Logger) *Organizer {
	return &Organizer{logger: logger}
}

func (o *Organizer) logf(format string, v ...any) {
	if o.logger != nil {
		o.logger.Printf(format, v...)
	}
}

// Organize is a shortcut for New(nil).Organize
func Organize(text, filePath string, cfg config.Configuration) EditResult {
	return New(nil).Organize(text, filePath, cfg)
}

// Organize groups, sorts and re-renders the leading import run of text.
// It never fails: any problem is traced and reported as NoChange.
func (o *Organizer) Organize(text, filePath string, cfg config.Configuration) (result EditResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logf(errors.TraceMsgRecovered, filePath, r)
			result = NoChange()
		}
	}()

	run, err := o.parse([]byte(text), filePath)
	if err != nil {
		o.logf(errors.TraceMsgParseFailed, filePath, err)
		return NoChange()
	}

	o.logf(errors.TraceMsgImportsFound, len(run.Imports), filePath)
	if len(run.Imports) == 0 {
		o.logf(errors.TraceMsgNoChange, filePath)
		return NoChange()
	}

	thirdParty, local := o.groupImports(run.Imports, cfg)

	if _, ok := config.ParseSortMethod(string(cfg.SortMethod)); !ok {
		o.logf(errors.TraceMsgUnknownSortValue, cfg.SortMethod, config.DefaultSortMethod)
	}
	cmp := NewComparator(cfg.SortMethod)
	thirdParty = o.sortGroup(thirdParty, ThirdPartyGroup, cmp)
	local = o.sortGroup(local, LocalGroup, cmp)

	rendered := renderGroups(thirdParty, local, detectEOL(text))
	if cfg.KeepHeaderComments {
		rendered = run.Imports[0].LeadingTrivia + rendered
	}

	span := Span{Start: 0, End: run.End}
	if text[span.Start:span.End] == rendered {
		o.logf(errors.TraceMsgNoChange, filePath)
		return NoChange()
	}

	o.logf(errors.TraceMsgReplace, span.Start, span.End, filePath)
	return Replace(text, span, rendered)
}

// groupImports splits imports into third-party and local, keeping their relative order
func (o *Organizer) groupImports(imports []ImportStatement, cfg config.Configuration) (thirdParty, local []ImportStatement) {
	for _, imp := range imports {
		group := Classify(imp.ModulePath, cfg)
		o.logf(errors.TraceMsgClassified, imp.ModulePath, group)
		if group == LocalGroup {
			local = append(local, imp)
		} else {
			thirdParty = append(thirdParty, imp)
		}
	}
	return thirdParty, local
}

// sortGroup returns a sorted copy of imports with their named bindings sorted too.
// Imports of the same module keep their original relative order.
func (o *Organizer) sortGroup(imports []ImportStatement, group ImportGroup, cmp *Comparator) []ImportStatement {
	if len(imports) == 0 {
		return nil
	}

	sorted := append([]ImportStatement(nil), imports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp.Compare(sorted[i].ModulePath, sorted[j].ModulePath) < 0
	})

	paths := make([]string, 0, len(sorted))
	for i := range sorted {
		sorted[i] = sorted[i].withBindings(SortBindings(sorted[i].NamedBindings))
		paths = append(paths, sorted[i].ModulePath)
	}
	o.logf(errors.TraceMsgSortedGroup, group, cmp.Method(), strings.Join(paths, ", "))

	return sorted
}
