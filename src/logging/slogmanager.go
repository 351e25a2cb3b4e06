package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"simassert/src/assert"
	"simassert/src/shutdown"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/natefinch/lumberjack.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const combinedLogComponentName = "all"
const logfileMaxBackups int = 10
const logfileMaxSize int = 10
const logfileCompress bool = true

type SlogManager interface {
	// Get the pointer to an existing logger by its componentId
	GetLogger(componentId string) (*slog.Logger, error)
	// Create a new logger with a unique componentId
	CreateLogger(componentId string) *slog.Logger

	CombinedLogPath() (string, error)
}

// Since this is only a logger we can simply always provide a default logger from golangs stdlib
type MockSlogManager struct {
	writer io.Writer
}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Log(string(p))
	return len(p), nil
}

func NewMockSlogManager(t *testing.T) *MockSlogManager {
	return &MockSlogManager{
		writer: &testWriter{t: t},
	}
}

func (m *MockSlogManager) CombinedLogPath() (string, error) {
	return "", fmt.Errorf("cant get combined log path of mock slog manager")
}

func (m *MockSlogManager) GetLogger(componentId string) (*slog.Logger, error) {
	return slog.New(slog.NewJSONHandler(m.writer, nil)).With("component", componentId), nil
}

func (m *MockSlogManager) CreateLogger(componentId string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(m.writer, nil)).With("component", componentId)
}

type slogManager struct {
	opts SlogManagerOpts

	activeLoggers     map[string]*slog.Logger
	activeLoggersLock sync.Mutex
	resolvedLogDir    *string
	combinedLogWriter io.Writer
}

type SlogManagerOpts struct {
	LogLevel           slog.Level
	AdditionalHandlers []slog.Handler
	// (optional) write all json logs to a single rotated file called "all.log" within LogDir
	LogDir *string
	// (optional) closes the log file on exit, defaults to shutdown.DefaultShutdown
	Shutdown *shutdown.Shutdown
}

func NewSlogManager(opts SlogManagerOpts) SlogManager {
	self := slogManager{}

	if opts.AdditionalHandlers == nil {
		opts.AdditionalHandlers = []slog.Handler{}
	}

	self.opts = opts
	self.activeLoggers = map[string]*slog.Logger{}
	self.combinedLogWriter = nil

	if opts.LogDir != nil {
		resolvedLogDir, err := filepath.Abs(*opts.LogDir)
		assert.Assert(err == nil, err)
		self.resolvedLogDir = &resolvedLogDir
		logfile := &lumberjack.Logger{
			Filename:   filepath.Join(resolvedLogDir, combinedLogComponentName+".log"), // Path to log file
			MaxSize:    logfileMaxSize,                                                 // Max size in megabytes before rotation
			MaxBackups: logfileMaxBackups,                                              // Max number of old log files to keep
			Compress:   logfileCompress,                                                // Compress old log files
		}
		self.combinedLogWriter = logfile

		shutdownModule := opts.Shutdown
		if shutdownModule == nil {
			shutdownModule = shutdown.DefaultShutdown
		}
		shutdownModule.Add(func() {
			err := logfile.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file %s: %s\n", logfile.Filename, err)
			}
		})
	}

	return &self
}

func (self *slogManager) GetLogger(componentId string) (*slog.Logger, error) {
	self.activeLoggersLock.Lock()
	defer self.activeLoggersLock.Unlock()

	logger := self.activeLoggers[componentId]
	if logger != nil {
		return logger, nil
	}

	return nil, fmt.Errorf("logger '%s' does not exist", componentId)
}

func (self *slogManager) CreateLogger(componentId string) *slog.Logger {
	self.activeLoggersLock.Lock()
	defer self.activeLoggersLock.Unlock()

	assert.Assert(componentId != combinedLogComponentName, fmt.Errorf("the componentId '%s' is not allowed because it is reserved", combinedLogComponentName))
	assert.Assert(self.activeLoggers[componentId] == nil, fmt.Errorf("logger was requested multiple times: %s", componentId))

	multiHandler := NewSlogMultiHandler()

	if self.combinedLogWriter != nil {
		multiHandler.AddHandler(slog.NewJSONHandler(self.combinedLogWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     self.opts.LogLevel,
		}))
	}

	for _, handler := range self.opts.AdditionalHandlers {
		multiHandler.AddHandler(handler)
	}

	logger := slog.New(multiHandler).With("component", componentId)

	self.activeLoggers[componentId] = logger

	return logger
}

func (self *slogManager) CombinedLogPath() (string, error) {
	if self.resolvedLogDir != nil {
		return filepath.Join(*self.resolvedLogDir, combinedLogComponentName+".log"), nil
	}

	return "", fmt.Errorf("logfiles are not enabled")
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level '%s'", level)
}

type LogLine struct {
	Level     string         `json:"level"`
	Component string         `json:"component"`
	Scope     *string        `json:"scope,omitempty"`
	Source    string         `json:"source"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
}

func (self *LogLine) ToJson() string {
	data, err := json.Marshal(self)
	assert.Assert(err == nil, err)
	return string(data)
}
