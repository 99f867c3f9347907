package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/host"
	"github.com/siyuan-infoblox/js-imports-group/pkg/watch"
)

var debounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch PATH...",
	Short: "Organize imports every time a source file is saved",
	Long: `watch keeps running and organizes the imports of a source file once it has
stayed unchanged for the debounce interval after a save. Directories are
watched recursively, including directories created later.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runWatch,
	SilenceUsage: true,
}

func init() {
	watchCmd.Flags().DurationVar(&debounce, "debounce", host.DefaultDebounce, "Quiet period after the last change of a file before it is organized")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}

	w, err := watch.New(runner, args, watch.Config{
		Debounce: debounce,
		Out:      cmd.OutOrStdout(),
		Logger:   traceLogger(cmd),
	})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), errors.InfoMsgWatching+"\n", w.Dirs())
	return w.Run(ctx)
}
