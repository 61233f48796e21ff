package lint

import (
	"context"
	"errors"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/flex/internal/types"
)

type mockLintEngine struct {
	mock.Mock
}

func (m *mockLintEngine) Run(filePath string) ([]types.Issue, error) {
	args := m.Called(filePath)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) RunSource(filename string, source []byte) ([]types.Issue, error) {
	args := m.Called(filename, source)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) IgnoreRule(rule string) {
	m.Called(rule)
}

func setupMockEngine(expectedIssues []types.Issue, filePath string) *mockLintEngine {
	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", filePath).Return(expectedIssues, nil)
	return mockEngine
}

func setupSourceMockEngine(expectedIssues []types.Issue, content []byte) *mockLintEngine {
	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", StdinFilename, content).Return(expectedIssues, nil)
	return mockEngine
}

func issueAt(filename, rule, message string) types.Issue {
	return types.Issue{
		Rule:     rule,
		Filename: filename,
		Start:    token.Position{Filename: filename, Offset: 0, Line: 1, Column: 1},
		End:      token.Position{Filename: filename, Offset: 10, Line: 1, Column: 11},
		Message:  message,
	}
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{issueAt("test.yaml", "test-rule", "Test issue")}
	mockEngine := setupMockEngine(expectedIssues, "test.yaml")

	issues, err := ProcessFile(mockEngine, "test.yaml")

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessFileError(t *testing.T) {
	t.Parallel()
	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", "broken.yaml").Return([]types.Issue(nil), errors.New("boom"))

	_, err := ProcessFile(mockEngine, "broken.yaml")

	assert.ErrorContains(t, err, "broken.yaml")
	mockEngine.AssertExpectations(t)
}

func TestProcessSource(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{issueAt(StdinFilename, "test-rule", "Test issue")}
	mockEngine := setupSourceMockEngine(expectedIssues, []byte("name: flex"))

	issues, err := ProcessSource(mockEngine, []byte("name: flex"))

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()
	ctx := context.Background()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "test1.yaml", "test2.json")
	createTempFiles(t, tempDir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, ".git"), 0o755))
	createTempFiles(t, filepath.Join(tempDir, ".git"), "config.yml")

	expectedIssues := []types.Issue{
		issueAt(paths[0], "rule1", "Test issue 1"),
		issueAt(paths[1], "rule2", "Test issue 2"),
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessPath(ctx, logger, mockEngine, tempDir, ProcessFile)

	assert.NoError(t, err)
	assert.Len(t, issues, 2)
	assert.Contains(t, issues, expectedIssues[0])
	assert.Contains(t, issues, expectedIssues[1])
	mockEngine.AssertExpectations(t)
	mockEngine.AssertNumberOfCalls(t, "Run", 2)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	t.Parallel()
	paths := createTempFiles(t, t.TempDir(), "notes.txt")
	mockEngine := new(mockLintEngine)

	issues, err := ProcessPath(context.Background(), nil, mockEngine, paths[0], ProcessFile)

	assert.NoError(t, err)
	assert.Empty(t, issues)
	mockEngine.AssertNotCalled(t, "Run", paths[0])
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()
	ctx := context.Background()

	paths := createTempFiles(t, t.TempDir(), "test1.yaml", "test2.yml")

	expectedIssues := []types.Issue{
		issueAt(paths[0], "rule1", "Test issue 1"),
		issueAt(paths[1], "rule2", "Test issue 2"),
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessFiles(ctx, logger, mockEngine, paths, ProcessFile)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessFilesMissingPath(t *testing.T) {
	t.Parallel()
	mockEngine := new(mockLintEngine)

	_, err := ProcessFiles(context.Background(), zap.NewNop(), mockEngine, []string{"does/not/exist.yaml"}, ProcessFile)

	assert.Error(t, err)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()
	ctx := context.Background()

	expectedIssues := []types.Issue{
		issueAt(StdinFilename, "rule1", "Test issue 1"),
		issueAt(StdinFilename, "rule2", "Test issue 2"),
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", StdinFilename, []byte("name: a")).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("RunSource", StdinFilename, []byte("name: b")).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessSources(ctx, logger, mockEngine, [][]byte{[]byte("name: a"), []byte("name: b")}, ProcessSource)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("test.yaml"))
	assert.True(t, hasDesiredExtension("test.yml"))
	assert.True(t, hasDesiredExtension("TEST.JSON"))
	assert.False(t, hasDesiredExtension("test.go"))
	assert.False(t, hasDesiredExtension("test"))
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultConfigPath)

	require.NoError(t, WriteConfig(path, DefaultConfig()))
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "flex", config.Name)
	assert.Equal(t, DefaultConfig().Rules, config.Rules)
	assert.Equal(t, types.SeverityWarning, config.Rules["version"].Severity)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	unknownField := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknownField, []byte("name: x\nrulez: {}\n"), 0o644))
	_, err = LoadConfig(unknownField)
	assert.Error(t, err)

	badSeverity := filepath.Join(dir, "severity.yaml")
	require.NoError(t, os.WriteFile(badSeverity, []byte("rules:\n  a:\n    path: a\n    severity: loud\n"), 0o644))
	_, err = LoadConfig(badSeverity)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	engine, err := New("")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "version"}, engine.Rules())

	path := filepath.Join(dir, "flex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: test
rules:
  port:
    path: server.port
    checks: [number, number.prime]
`), 0o644))
	_, err = New(path)
	assert.Error(t, err)
}

func createTempFiles(t *testing.T, dir string, fileNames ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		filePath := filepath.Join(dir, fileName)
		f, err := os.Create(filePath)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		paths = append(paths, filePath)
	}
	return paths
}
