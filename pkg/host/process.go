package host

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/organizer"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

// ProcessorConfig controls a batch run over files and directories
type ProcessorConfig struct {
	InPlace bool      // write changes back to the files
	Jobs    int       // files processed concurrently, runtime.NumCPU() if <= 0
	Out     io.Writer // progress messages, io.Discard if nil
}

// FileResult is the outcome for one file
type FileResult struct {
	Path   string
	Edit   organizer.EditResult
	Output string // full organized text, only when not writing in place
	Err    error
}

// Processor runs the organizer over files from the command line
type Processor struct {
	config ProcessorConfig
	runner *Runner
}

// NewProcessor creates a processor using runner for every file
func NewProcessor(runner *Runner, config ProcessorConfig) *Processor {
	if config.Jobs <= 0 {
		config.Jobs = runtime.NumCPU()
	}
	if config.Out == nil {
		config.Out = io.Discard
	}
	return &Processor{config: config, runner: runner}
}

// ProcessFile organizes a single file
func (p *Processor) ProcessFile(path string) FileResult {
	result := FileResult{Path: path}

	if p.config.InPlace {
		result.Edit, result.Err = p.runner.Run(NewFileDocument(path), ReasonManual)
		return result
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return result
	}
	doc := NewBufferDocument(path, string(data))
	result.Edit, result.Err = p.runner.Run(doc, ReasonManual)
	result.Output = doc.Text()
	return result
}

// ProcessFiles organizes files concurrently; results keep the order of paths
func (p *Processor) ProcessFiles(paths []string) []FileResult {
	results := make([]FileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(p.config.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.ProcessFile(path)
			return nil
		})
	}
	_ = g.Wait()

	processedCount := 0
	errorCount := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(p.config.Out, errors.InfoMsgErrorProcessing+"\n", res.Path, res.Err)
			errorCount++
			continue
		}
		processedCount++
		if p.config.InPlace && res.Edit.Changed() {
			fmt.Fprintf(p.config.Out, errors.InfoMsgProcessedFiles+"\n", res.Path)
		}
	}

	fmt.Fprintf(p.config.Out, errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.config.Out, errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Fprintln(p.config.Out)

	return results
}

// ProcessPath processes a file or a directory tree
func (p *Processor) ProcessPath(path string) ([]FileResult, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return []FileResult{p.ProcessFile(path)}, nil
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}

	if len(files) == 0 {
		fmt.Fprintf(p.config.Out, errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil, nil
	}

	fmt.Fprintf(p.config.Out, errors.InfoMsgFoundSourceFiles+"\n", len(files), path)
	return p.ProcessFiles(files), nil
}

// Failed counts results carrying an error
func Failed(results []FileResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Changed returns the paths whose imports were (or would be) reorganized
func Changed(results []FileResult) []string {
	var paths []string
	for _, res := range results {
		if res.Err == nil && res.Edit.Changed() {
			paths = append(paths, res.Path)
		}
	}
	return paths
}
