package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptget/pkg/consolidate"
	"promptget/pkg/selftest"
)

// runConsolidate writes the consolidated file and prints a one-line summary.
func runConsolidate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy(opts.logger)
	if err != nil {
		return err
	}

	res, err := consolidate.Run(consolidate.Options{Root: cfg.Root, Policy: policy}, opts.logger)
	if err != nil {
		opts.logger.Error("prompt-get execution failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s with %d files consolidated (%d bytes)\n", res.OutputPath, len(res.Files), res.Bytes)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d unreadable or non-text files:\n", len(res.Skipped))
		for _, s := range res.Skipped {
			fmt.Fprintf(out, "  %s (%s)\n", s.Path, s.Reason)
		}
	}
	return nil
}

// runSelfTest runs the built-in checks. It never touches the working directory.
func runSelfTest(cmd *cobra.Command, opts *rootOptions) error {
	_, err := selftest.Run(cmd.OutOrStdout(), opts.logger)
	return err
}
