package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/py-imports-check/pkg/checker"
	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/utils"
	"github.com/siyuan-infoblox/py-imports-check/pkg/version"
)

const (
	UseDescription   = "pic [flags] FILES..."
	ShortDescription = "Python import checker - verifies PEP8 import ordering"
	LongDescription  = `pic is a command-line tool that checks the ordering of top-level imports
in Python source files against the PEP8 convention:

1. Standard library modules
2. Third-party modules
3. Local/project modules

Groups are separated by a blank line and sorted alphabetically within each
group. When a file's imports deviate, a unified diff between the actual and
suggested ordering is printed and the exit status is nonzero.

FILES can be Python files or directories. Directories are walked recursively
for .py files, skipping hidden and tooling directories.

Classification never imports anything: a bundled standard-library table and a
project-root lookup replace runtime probing. Use the override flags to pin
modules the heuristics get wrong.`
)

var (
	standard    []string
	thirdParty  []string
	local       []string
	projectRoot string
	excludes    []string
	verbose     bool
	showVersion bool
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
	rootCmd.PersistentFlags().StringSliceVar(&standard, "standard", nil, "Comma-separated list of modules to class as standard/built-in")
	rootCmd.PersistentFlags().StringSliceVar(&thirdParty, "third_party", nil, "Comma-separated list of modules to class as third_party")
	rootCmd.PersistentFlags().StringSliceVar(&local, "local", nil, "Comma-separated list of modules to class as local")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "Root directory for local-module resolution (default: discovered per file)")
	rootCmd.PersistentFlags().StringSliceVar(&excludes, "exclude", nil, "Glob patterns to skip when walking directories")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	globs, err := utils.CompileExcludes(excludes)
	if err != nil {
		return err
	}

	c := checker.New(checker.CheckerConfig{
		Overrides: checker.Overrides{
			Standard:   sanitizeModules(standard),
			ThirdParty: sanitizeModules(thirdParty),
			Local:      sanitizeModules(local),
		},
		ProjectRoot: projectRoot,
		Excludes:    globs,
		Out:         cmd.OutOrStdout(),
	})

	if failures := c.CheckPaths(args); failures > 0 {
		return fmt.Errorf(errors.ErrMsgFilesNeedAttention, failures)
	}
	return nil
}

// sanitizeModules trims whitespace around override entries and drops empty
// ones.
func sanitizeModules(modules []string) []string {
	sanitized := make([]string, 0, len(modules))
	for _, module := range modules {
		if module = strings.TrimSpace(module); module != "" {
			sanitized = append(sanitized, module)
		}
	}
	return sanitized
}

func Execute() error {
	return rootCmd.Execute()
}
