package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptget/pkg/config"
	"promptget/pkg/logging"
	"promptget/pkg/version"
)

// rootOptions holds the flag values shared by every command.
type rootOptions struct {
	dir      string
	output   string
	excludes []string
	verbose  bool
	selfTest bool

	logger *zap.Logger
}

// NewRootCommand builds the command tree. Running it without a subcommand consolidates
// the working directory into prompt.txt.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "prompt-get",
		Short: "Consolidate a directory tree into a single prompt file",
		Long: `prompt-get walks the current directory and concatenates every text file into prompt.txt,
each file preceded by a comment line holding its relative path. The result can be pasted
into an LLM prompt window as a complete codebase dump.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(opts.verbose, "prompt-get", version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logging.Logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.selfTest {
				return runSelfTest(cmd, opts)
			}
			return runConsolidate(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.dir, "dir", "C", "", "Directory to consolidate (default: current directory)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output filename written into the directory (default: prompt.txt)")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "Exclude paths matching a glob such as 'docs/**' (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every traversal decision")
	rootCmd.Flags().BoolVar(&opts.selfTest, "test", false, "Run the built-in self-tests instead of consolidating")

	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig resolves the run configuration: defaults, then the project's
// .prompt.yaml, then flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	root := o.dir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		root = wd
	}

	cfg, err := config.Load(root)
	if err != nil {
		o.logger.Error("Failed to load configuration", zap.String("directory", root), zap.Error(err))
		return cfg, err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = o.output
	}
	cfg.Exclude = append(cfg.Exclude, o.excludes...)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	o.logger.Debug("Resolved configuration",
		zap.String("root", cfg.Root),
		zap.String("output", cfg.Output),
		zap.Strings("excludeDirs", cfg.ExcludeDirs),
		zap.Strings("excludeFiles", cfg.ExcludeFiles),
		zap.Strings("exclude", cfg.Exclude),
		zap.String("ignoreFile", cfg.IgnoreFile))
	return cfg, nil
}
