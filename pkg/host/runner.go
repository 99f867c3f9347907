package host

import (
	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/organizer"
)

// Reason tells why the organizer was invoked. It is recorded in the trace
// and never changes the result.
type Reason string

const (
	ReasonManual     Reason = "manual"
	ReasonWillSave   Reason = "will-save"
	ReasonSave       Reason = "save"
	ReasonFormat     Reason = "format"
	ReasonCodeAction Reason = "code-action"
)

// ConfigResolver returns the configuration that applies to a document
type ConfigResolver func(path string) (config.Configuration, error)

// StaticConfig resolves every document to cfg
func StaticConfig(cfg config.Configuration) ConfigResolver {
	return func(string) (config.Configuration, error) {
		return cfg.Clone(), nil
	}
}

// Runner turns a document change intent into at most one applied edit:
// take a snapshot, organize it, apply the result
type Runner struct {
	organizer *organizer.Organizer
	resolve   ConfigResolver
	logger    organizer.Logger
}

// NewRunner creates a runner; logger may be nil
func NewRunner(org *organizer.Organizer, resolve ConfigResolver, logger organizer.Logger) *Runner {
	if org == nil {
		org = organizer.New(logger)
	}
	if resolve == nil {
		resolve = StaticConfig(config.Default())
	}
	return &Runner{organizer: org, resolve: resolve, logger: logger}
}

func (r *Runner) logf(format string, v ...any) {
	if r.logger != nil {
		r.logger.Printf(format, v...)
	}
}

// Compute returns the edit for text without applying it. Component templates
// have their first <script> block organized in place.
func (r *Runner) Compute(path, text string, cfg config.Configuration) organizer.EditResult {
	if !isComponentTemplate(path) {
		return r.organizer.Organize(text, path, cfg)
	}

	block, ok := findScriptBlock(path, text)
	if !ok {
		r.logf("%s: %s", errors.ErrMsgNoScriptBlock, path)
		return organizer.NoChange()
	}
	r.logf(errors.TraceMsgEmbeddedScript, path, block.offset)
	return r.organizer.Organize(block.body, block.virtualPath, cfg).Shift(block.offset, text)
}

// Run handles one intent for doc and returns the edit that was applied, if any
func (r *Runner) Run(doc Document, reason Reason) (organizer.EditResult, error) {
	r.logf("organize %s (%s)", doc.Path(), reason)

	text, err := doc.Snapshot()
	if err != nil {
		return organizer.NoChange(), err
	}

	cfg, err := r.resolve(doc.Path())
	if err != nil {
		return organizer.NoChange(), err
	}

	res := r.Compute(doc.Path(), text, cfg)
	if !res.Changed() {
		return res, nil
	}
	if err := doc.ApplyEdit(res); err != nil {
		return organizer.NoChange(), err
	}
	return res, nil
}
