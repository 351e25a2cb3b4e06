package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"simassert/src/logging"
	"simassert/src/shutdown"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// compile time check
func TestSlogManagerAdheresToLogManagerInterface(t *testing.T) {
	t.Parallel()
	testfunc := func(w logging.SlogManager) {}
	testfunc(logging.NewSlogManager(logging.SlogManagerOpts{LogLevel: slog.LevelInfo})) // this checks if the typesystem allows to call it
}

// compile time check
func TestMockSlogManagerAdheresToLogManagerInterface(t *testing.T) {
	t.Parallel()
	testfunc := func(w logging.SlogManager) {}
	testfunc(logging.NewMockSlogManager(t)) // this checks if the typesystem allows to call it
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	level, err := logging.ParseLogLevel("debug")
	assert.NoError(err)
	assert.Equal(slog.LevelDebug, level)

	level, err = logging.ParseLogLevel("WARN")
	assert.NoError(err)
	assert.Equal(slog.LevelWarn, level)

	_, err = logging.ParseLogLevel("loud")
	assert.Error(err)
}

func TestCreateLoggerTwicePanics(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	manager := logging.NewSlogManager(logging.SlogManagerOpts{LogLevel: slog.LevelInfo})
	logger := manager.CreateLogger("cmd")

	found, err := manager.GetLogger("cmd")
	assert.NoError(err)
	assert.Same(logger, found)

	_, err = manager.GetLogger("usererrors")
	assert.Error(err)

	assert.Panics(func() { manager.CreateLogger("cmd") })
	assert.Panics(func() { manager.CreateLogger("all") }, "reserved component name")
}

func TestPrettyPrintHandler(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := &bytes.Buffer{}
	handler := logging.NewPrettyPrintHandler(out, false, slog.LevelInfo, []string{})
	manager := logging.NewSlogManager(logging.SlogManagerOpts{
		LogLevel:           slog.LevelInfo,
		AdditionalHandlers: []slog.Handler{handler},
	})
	logger := manager.CreateLogger("cmd")

	logger.Debug("hidden")
	logger.Info("evaluated check", "kind", "CANNOT_BE_NEGATIVE")

	line := out.String()
	assert.True(strings.HasPrefix(line, "INFO cmd "), line)
	assert.Contains(line, "evaluated check")
	assert.Contains(line, `{"kind":"CANNOT_BE_NEGATIVE"}`)
	assert.NotContains(line, "hidden")
	assert.Equal(1, strings.Count(line, "\n"))
}

func TestPrettyPrintHandlerFilter(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := &bytes.Buffer{}
	handler := logging.NewPrettyPrintHandler(out, false, slog.LevelDebug, []string{"usererrors"})
	manager := logging.NewSlogManager(logging.SlogManagerOpts{
		LogLevel:           slog.LevelDebug,
		AdditionalHandlers: []slog.Handler{handler},
	})

	manager.CreateLogger("cmd").Info("filtered")
	manager.CreateLogger("usererrors").Debug("user error")

	assert.NotContains(out.String(), "filtered")
	assert.Contains(out.String(), "DEBUG usererrors")
}

func TestCombinedLogFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	logDir := t.TempDir()
	exits := []int{}
	shutdownModule := shutdown.New(func(code int) { exits = append(exits, code) })
	manager := logging.NewSlogManager(logging.SlogManagerOpts{
		LogLevel: slog.LevelInfo,
		LogDir:   &logDir,
		Shutdown: shutdownModule,
	})
	assert.Equal(1, shutdownModule.Len(), "the log file is closed by a shutdown hook")
	manager.CreateLogger("cmd").Info("written to disk")
	shutdownModule.Exit(0)
	assert.Equal(0, shutdownModule.Len())
	assert.Equal([]int{0}, exits)

	path, err := manager.CombinedLogPath()
	assert.NoError(err)
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), `"msg":"written to disk"`)
	assert.Contains(string(data), `"component":"cmd"`)
}

func TestCombinedLogPathDisabled(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	shutdownModule := shutdown.New(func(int) {})
	manager := logging.NewSlogManager(logging.SlogManagerOpts{LogLevel: slog.LevelInfo, Shutdown: shutdownModule})
	_, err := manager.CombinedLogPath()
	assert.Error(err)
	assert.Equal(0, shutdownModule.Len(), "nothing to close without a log file")
}

func TestLogLineToJson(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	line := logging.LogLine{Level: "INFO", Component: "cmd", Source: "cmd.go:1", Message: "hi"}
	assert.JSONEq(`{"level":"INFO","component":"cmd","source":"cmd.go:1","message":"hi"}`, line.ToJson())
}

func TestPrettyPrintHandlerGroups(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := &bytes.Buffer{}
	handler := logging.NewPrettyPrintHandler(out, false, slog.LevelInfo, []string{})
	manager := logging.NewSlogManager(logging.SlogManagerOpts{
		LogLevel:           slog.LevelInfo,
		AdditionalHandlers: []slog.Handler{handler},
	})
	logger := manager.CreateLogger("usererrors")

	logger.WithGroup("violation").Info("grouped", "kind", "MUST_BE_ZERO")
	logger.WithGroup("violation").WithGroup("segments").Info("nested", "prefix", "delay")
	logger.Info("plain", "site", "connect")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(lines, 3)
	assert.Contains(lines[0], `{"violation.kind":"MUST_BE_ZERO"}`)
	assert.Contains(lines[1], `{"violation.segments.prefix":"delay"}`)
	assert.Contains(lines[2], `{"site":"connect"}`)
	assert.True(strings.HasPrefix(lines[0], "INFO usererrors "), lines[0])
}
