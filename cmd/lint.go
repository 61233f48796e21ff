package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/flex/formatter"
	"github.com/gnoswap-labs/flex/internal"
	tt "github.com/gnoswap-labs/flex/internal/types"
	"github.com/gnoswap-labs/flex/lint"
)

// stdinArg reads the document to lint from standard input.
const stdinArg = "-"

var (
	ignoreRules    string
	lintJSONOutput bool
	outPath        string
	watchMode      bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check data files against the configured rules",
	Long: `Check YAML and JSON files, or every such file below a directory,
against the rules of the configuration file. Use "-" to read a document from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := loadEngine(logger, cfgFile)
		if err != nil {
			logger.Error("Failed to initialize lint engine", zap.Error(err))
			os.Exit(1)
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		issues, stdin, err := lintPaths(ctx, logger, engine, args, cmd.InOrStdin())
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		output, err := homedir.Expand(outPath)
		if err != nil {
			logger.Error("Invalid output path", zap.Error(err))
			os.Exit(1)
		}

		if err := printIssues(cmd.OutOrStdout(), logger, issues, stdin, lintJSONOutput, output); err != nil {
			logger.Error("Error printing issues", zap.Error(err))
			os.Exit(1)
		}

		if watchMode {
			watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := watchPaths(watchCtx, logger, engine, args, cmd.OutOrStdout()); err != nil {
				logger.Error("Error watching files", zap.Error(err))
				os.Exit(1)
			}
			return
		}

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	lintCmd.Flags().BoolVar(&lintJSONOutput, "json", false, "Output issues in JSON format")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	lintCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-lint files whenever they change")
}

// loadEngine builds the engine from configurationPath. A missing default
// configuration file falls back to the built-in rules.
func loadEngine(logger *zap.Logger, configurationPath string) (*internal.Engine, error) {
	configurationPath, err := homedir.Expand(configurationPath)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration path: %w", err)
	}
	if configurationPath == lint.DefaultConfigPath {
		if _, err := os.Stat(configurationPath); errors.Is(err, os.ErrNotExist) {
			logger.Warn("Configuration file not found, using default rules", zap.String("path", configurationPath))
			return lint.New("")
		}
	}
	return lint.New(configurationPath)
}

// lintPaths lints every path; "-" is read from stdin, whose content is
// returned for snippet rendering.
func lintPaths(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, stdin io.Reader) ([]tt.Issue, []byte, error) {
	var (
		files  []string
		source []byte
		issues []tt.Issue
	)
	for _, p := range paths {
		if p != stdinArg {
			files = append(files, p)
			continue
		}
		if source != nil {
			continue
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading stdin: %w", err)
		}
		source = data
		sourceIssues, err := lint.ProcessSources(ctx, logger, engine, [][]byte{data}, lint.ProcessSource)
		if err != nil {
			return nil, nil, err
		}
		issues = append(issues, sourceIssues...)
	}

	if len(files) > 0 {
		fileIssues, err := lint.ProcessFiles(ctx, logger, engine, files, lint.ProcessFile)
		if err != nil {
			return nil, nil, err
		}
		issues = append(issues, fileIssues...)
	}
	return issues, source, nil
}

func printIssues(w io.Writer, logger *zap.Logger, issues []tt.Issue, stdin []byte, isJSON bool, jsonOutput string) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	if isJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		// keep names such as <stdin> readable
		enc.SetEscapeHTML(false)
		if err := enc.Encode(issuesByFile); err != nil {
			return fmt.Errorf("error marshalling issues to JSON: %w", err)
		}
		if jsonOutput == "" {
			_, err := w.Write(buf.Bytes())
			return err
		}
		return os.WriteFile(jsonOutput, buf.Bytes(), 0o644)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		sourceCode, err := sourceFor(filename, stdin)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			continue
		}
		fmt.Fprint(w, formatter.GenerateFormattedIssue(issuesByFile[filename], sourceCode))
	}
	return nil
}

func sourceFor(filename string, stdin []byte) (*internal.SourceCode, error) {
	if filename == lint.StdinFilename {
		return &internal.SourceCode{Lines: strings.Split(string(stdin), "\n")}, nil
	}
	return internal.ReadSourceCode(filename)
}

// watchPaths re-lints the given paths on every change until ctx is done.
// Stdin cannot be watched and is skipped.
func watchPaths(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, w io.Writer) error {
	var files []string
	for _, p := range paths {
		if p != stdinArg {
			files = append(files, p)
		}
	}
	if len(files) == 0 {
		return errors.New("no paths to watch")
	}

	watcher, err := lint.NewWatcher(logger, engine, files)
	if err != nil {
		return err
	}
	logger.Info("Watching for changes", zap.Strings("paths", files))

	return watcher.Run(ctx, func(filename string, issues []tt.Issue, err error) {
		if err != nil {
			logger.Error("Error linting file", zap.String("file", filename), zap.Error(err))
			return
		}
		if len(issues) == 0 {
			logger.Info("No issues found", zap.String("file", filename))
			return
		}
		if err := printIssues(w, logger, issues, nil, false, ""); err != nil {
			logger.Error("Error printing issues", zap.Error(err))
		}
	})
}
