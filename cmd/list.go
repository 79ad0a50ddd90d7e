package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"promptget/pkg/consolidate"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the files that would be consolidated",
		Long: `List every file that prompt-get would put into the output, in output order.
Nothing is written. On a terminal the files are drawn as a tree; when piped,
one path is printed per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			policy, err := cfg.Policy(opts.logger)
			if err != nil {
				return err
			}

			files, err := consolidate.Collect(os.DirFS(cfg.Root), policy, opts.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree || isTerminal(out) {
				_, err = io.WriteString(out, consolidate.RenderTree(files))
				return err
			}
			for _, f := range files {
				if _, err := fmt.Fprintln(out, f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Draw a tree even when the output is not a terminal")
	return cmd
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
