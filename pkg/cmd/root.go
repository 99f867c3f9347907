package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/host"
	"github.com/siyuan-infoblox/js-imports-group/pkg/organizer"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/js-imports-group/pkg/version"
)

const (
	UseDescription   = "jig [flags] PATH..."
	ShortDescription = "JS imports grouper - A tool to group and sort JavaScript and TypeScript imports"
	LongDescription  = `jig is a command-line tool that groups and sorts the leading import
statements of JavaScript and TypeScript files.

It organizes imports into groups:
1. Third-party packages
2. Local modules (relative paths and configured prefixes such as "@/")

Inside each group imports are ordered by the configured sort method
(length-desc, length-asc, length-then-alpha or alphabetical) and the names
inside braces are sorted alphabetically.

PATH can be either a single source file or a directory. When a directory is
specified, all source files (.js, .jsx, .mjs, .cjs, .ts, .tsx, .mts, .cts,
.vue, .svelte) below it are processed recursively, skipping node_modules,
vendor and hidden directories.

Settings are read from the nearest .jigrc.yaml, .jigrc.yml or .jigrc.json,
then from JIG_* environment variables (a .env file in the working directory
is loaded first), then from the flags below.`
)

var (
	inPlace              bool
	check                bool
	jsonOutput           bool
	settingsFile         string
	localPrefixes        []string
	treatRelativeAsLocal bool
	sortMethod           string
	keepHeaderComments   bool
	jobs                 int
	verbose              bool
	showVersion          bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "Settings file to use instead of discovering .jigrc files")
	rootCmd.PersistentFlags().StringSliceVar(&localPrefixes, "local-prefixes", nil, "Comma-separated list of module path prefixes treated as local (e.g., @/,~/,src/)")
	rootCmd.PersistentFlags().BoolVar(&treatRelativeAsLocal, "treat-relative-as-local", true, "Always treat ./ and ../ imports as local")
	rootCmd.PersistentFlags().StringVar(&sortMethod, "sort-method", string(config.DefaultSortMethod), "Sort method inside each group: alphabetical, length-asc, length-desc or length-then-alpha")
	rootCmd.PersistentFlags().BoolVar(&keepHeaderComments, "keep-header-comments", false, "Keep the comments above the first import")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Trace every decision on stderr")

	rootCmd.Flags().BoolVar(&inPlace, "in-place", false, "Modify the file in place instead of printing to stdout")
	rootCmd.Flags().BoolVar(&check, "check", false, "Only report files whose imports are not organized; exit with an error if any")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the computed edits as JSON instead of the organized text")
	rootCmd.Flags().IntVar(&jobs, "jobs", 0, "Number of files processed concurrently (default: number of CPUs)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

// fileReport is the --json description of one file
type fileReport struct {
	Path    string              `json:"path"`
	Changed bool                `json:"changed"`
	Start   *organizer.Position `json:"start,omitempty"`
	End     *organizer.Position `json:"end,omitempty"`
	NewText *string             `json:"newText,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func newFileReport(res host.FileResult) fileReport {
	report := fileReport{Path: res.Path}
	if res.Err != nil {
		report.Error = res.Err.Error()
		return report
	}
	if res.Edit.Changed() {
		report.Changed = true
		report.Start = &res.Edit.StartPosition
		report.End = &res.Edit.EndPosition
		report.NewText = &res.Edit.NewText
	}
	return report
}

func traceLogger(cmd *cobra.Command) organizer.Logger {
	if !verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "jig: ", 0)
}

// flagOverrides applies the flags given on the command line on top of a resolved configuration
func flagOverrides(cmd *cobra.Command) func(config.Configuration) config.Configuration {
	flags := cmd.Flags()
	return func(cfg config.Configuration) config.Configuration {
		if flags.Changed("local-prefixes") {
			cfg.LocalPrefixes = append([]string(nil), localPrefixes...)
		}
		if flags.Changed("treat-relative-as-local") {
			cfg.TreatRelativeAsLocal = treatRelativeAsLocal
		}
		if flags.Changed("sort-method") {
			cfg.SortMethod = config.SortMethod(sortMethod)
		}
		if flags.Changed("keep-header-comments") {
			cfg.KeepHeaderComments = keepHeaderComments
		}
		return cfg
	}
}

// newRunner builds the runner shared by the organize and watch commands
func newRunner(cmd *cobra.Command) (*host.Runner, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(wd); err != nil {
		return nil, err
	}

	logger := traceLogger(cmd)
	if cmd.Flags().Changed("sort-method") {
		if _, ok := config.ParseSortMethod(sortMethod); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+errors.WarnMsgUnknownSortMethod+"\n", sortMethod, config.DefaultSortMethod)
		}
	}
	if settingsFile != "" && logger != nil {
		logger.Printf(errors.InfoMsgUsingSettings, settingsFile)
	}

	resolve, err := host.NewSettingsResolver(host.SettingsResolverConfig{
		SettingsFile: settingsFile,
		Override:     flagOverrides(cmd),
		Warn: func(msg string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", msg)
		},
	})
	if err != nil {
		return nil, err
	}
	return host.NewRunner(organizer.New(logger), resolve, logger), nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		return printVersion(cmd.OutOrStdout())
	}

	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	write := inPlace && !check && !jsonOutput

	p := host.NewProcessor(runner, host.ProcessorConfig{
		InPlace: write,
		Jobs:    jobs,
		Out:     stderr,
	})

	var results []host.FileResult
	printText := !write && !check && !jsonOutput
	for _, path := range args {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		if isDir && printText {
			fmt.Fprintln(stderr, errors.WarnMsgProcessingDirWithoutInPlace)
			fmt.Fprintln(stderr, errors.InfoMsgUseInPlaceFlag)
		}

		res, err := p.ProcessPath(path)
		if err != nil {
			return err
		}
		if printText && !isDir && len(res) == 1 && res[0].Err == nil {
			fmt.Fprint(stdout, res[0].Output)
		}
		results = append(results, res...)
	}

	if jsonOutput {
		reports := make([]fileReport, 0, len(results))
		for _, res := range results {
			reports = append(reports, newFileReport(res))
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	}

	if failed := host.Failed(results); failed > 0 {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}

	if check {
		changed := host.Changed(results)
		for _, path := range changed {
			fmt.Fprintf(stdout, errors.InfoMsgWouldChange+"\n", path)
		}
		if len(changed) > 0 {
			return fmt.Errorf(errors.ErrMsgFilesNeedOrganizing, len(changed))
		}
	}
	return nil
}

func printVersion(w io.Writer) error {
	info := version.Get()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	_, err := fmt.Fprintln(w, info)
	return err
}

func Execute(v string) error {
	if v != "" && v != "(devel)" {
		version.Version = v
	}
	return rootCmd.Execute()
}
