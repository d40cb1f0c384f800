// File: cmd/root.go
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collate/pkg/collate"
	"collate/pkg/logging"
	"collate/pkg/version"
)

const appName = "collate"

var (
	flagRoot          string
	flagOutput        string
	flagMaxKB         int
	flagIncludeHidden bool
	flagExtraDirs     []string
	flagOnlyExts      []string
	flagIgnoreFile    string
	flagTree          bool
	flagConfig        string
	flagVerbose       bool
)

// logger is injected by Execute before the command runs.
var logger *zap.Logger

// RootCmd runs the collation itself; no subcommand is needed for the main
// workflow.
var RootCmd = &cobra.Command{
	Use:   "collate",
	Short: "Collate a project's text files into one Markdown document",
	Long: `Collate walks a directory tree, filters out binary, oversized, hidden,
and ignored files, and concatenates what remains into a single Markdown
document with one language-tagged code fence per file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			if debugLogger, err := logging.Setup(true, appName, version.Get().Version); err == nil {
				logger = debugLogger
			}
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		result, err := collate.Run(cfg, logger)
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), result)
		return nil
	},
}

// Execute wires in the application logger and runs the root command.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&flagRoot, "root", "r", ".", "root directory to scan")
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "project_context.md", "output Markdown file")
	RootCmd.Flags().IntVar(&flagMaxKB, "max-kb", 1024, "skip files larger than this many KB")
	RootCmd.Flags().BoolVar(&flagIncludeHidden, "include-hidden", false, "include hidden files and directories")
	RootCmd.Flags().StringSliceVar(&flagExtraDirs, "extra-dirs", nil, "additional directory names to exclude")
	RootCmd.Flags().StringSliceVar(&flagOnlyExts, "only-exts", nil, "only include these extensions (e.g. --only-exts .go,.md)")
	RootCmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "global ignore-pattern file")
	RootCmd.Flags().BoolVar(&flagTree, "tree", false, "add a directory-tree section to the document")
	RootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file (default "+collate.DefaultConfigFile+" if present)")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// buildConfig layers the configuration sources: defaults, then the YAML
// config file, then COLLATE_* environment variables, then explicitly-set
// flags.
func buildConfig(cmd *cobra.Command) (collate.Config, error) {
	cfg := collate.DefaultConfig()

	// A .env file in the working directory feeds the env overrides.
	_ = godotenv.Load()

	path, explicit := flagConfig, true
	if path == "" {
		path, explicit = collate.DefaultConfigFile, false
	}
	fileCfg, err := collate.LoadConfigFile(path, explicit)
	if err != nil {
		return cfg, err
	}
	fileCfg.Apply(&cfg)

	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = flagRoot
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("max-kb") {
		cfg.MaxFileSizeKB = flagMaxKB
	}
	if flags.Changed("include-hidden") {
		cfg.IncludeHidden = flagIncludeHidden
	}
	if flags.Changed("extra-dirs") {
		cfg.ExtraDirs = flagExtraDirs
	}
	if flags.Changed("only-exts") {
		cfg.OnlyExts = flagOnlyExts
	}
	if flags.Changed("ignore-file") {
		cfg.IgnoreFile = flagIgnoreFile
	}
	if flags.Changed("tree") {
		cfg.Tree = flagTree
	}
	cfg.Verbose = flagVerbose

	return cfg, nil
}
