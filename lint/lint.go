package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/flex/internal"
	tt "github.com/gnoswap-labs/flex/internal/types"
	"github.com/gnoswap-labs/flex/scanner"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = ".flex.yaml"

// StdinFilename names issues found in sources read from standard input.
const StdinFilename = "<stdin>"

type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(filename string, source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
}

// New creates an engine from the configuration file at configurationPath.
// An empty path selects DefaultConfig.
func New(configurationPath string) (*internal.Engine, error) {
	config := DefaultConfig()
	if configurationPath != "" {
		var err error
		config, err = parseConfigurationFile(configurationPath)
		if err != nil {
			return nil, err
		}
	}
	return internal.NewEngine(config.Rules)
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

type fileResult struct {
	issues []tt.Issue
	err    error
}

// ProcessPath lints a single file or every data file below a directory.
// Directories are processed by a bounded worker pool; a failing file does not
// stop the others, and the returned error joins every failure. When ctx is
// done the issues found so far are returned with ctx.Err().
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	issues := []tt.Issue{}
	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return issues, nil
		}
		fileIssues, err := processor(engine, path)
		if err != nil {
			return issues, err
		}
		return append(issues, fileIssues...), nil
	}

	files, err := collectFiles(path)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("Scanned directory", zap.String("path", path), zap.Int("files", len(files)))
	}

	results := make(chan fileResult, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var wg sync.WaitGroup
	var ctxErr error
schedule:
	for _, filePath := range files {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break schedule
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileIssues, err := processor(engine, fp)
			if err != nil && logger != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
			}
			results <- fileResult{issues: fileIssues, err: err}
			_ = bar.Add(1)
		}(filePath)
	}
	wg.Wait()
	close(results)
	_ = bar.Finish()

	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		issues = append(issues, r.issues...)
	}

	if ctxErr != nil {
		return issues, ctxErr
	}
	return issues, errors.Join(errs...)
}

// collectFiles lists the data files below root, skipping hidden directories.
func collectFiles(root string) ([]string, error) {
	found, err := scanner.New(root, desiredExtensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}
	files := make([]string, len(found))
	for i, f := range found {
		files[i] = f.Path
	}
	return files, nil
}

func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	issues, err := engine.Run(filePath)
	if err != nil {
		return nil, fmt.Errorf("error linting %s: %w", filePath, err)
	}
	return issues, nil
}

func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(StdinFilename, source)
}

var desiredExtensions = []string{".yaml", ".yml", ".json"}

func hasDesiredExtension(path string) bool {
	return scanner.New("", desiredExtensions...).IsTargetFile(path)
}

// Config represents the overall configuration with a name and a map of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig is used when no configuration file exists and is what
// `flex init` writes.
func DefaultConfig() Config {
	return Config{
		Name: "flex",
		Rules: map[string]tt.ConfigRule{
			"name": {
				Path:     "name",
				Checks:   []string{"string", "!string.blank"},
				Required: true,
				Message:  "name must be a non-blank string",
			},
			"version": {
				Path:     "version",
				Checks:   []string{"string"},
				Prefix:   "v",
				Severity: tt.SeverityWarning,
			},
		},
	}
}

// LoadConfig reads the configuration file at configurationPath.
func LoadConfig(configurationPath string) (Config, error) {
	return parseConfigurationFile(configurationPath)
}

// WriteConfig writes config as YAML to configurationPath.
func WriteConfig(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}
	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return fmt.Errorf("error writing configuration: %w", err)
	}
	return nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}

	return config, nil
}
