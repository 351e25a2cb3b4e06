package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"simassert/src/assert"
	"simassert/src/shell"
	"slices"
	"sync"

	"github.com/nwidger/jsoncolor"
)

// PrettyPrintHandler renders human readable lines: LEVEL component source message payload
type PrettyPrintHandler struct {
	out       io.Writer
	outLock   *sync.Mutex
	colors    bool
	logLevel  slog.Level
	logFilter []string
	attrs     []slog.Attr
	// dot separated, qualifies the payload keys of records
	group string
}

func NewPrettyPrintHandler(
	out io.Writer,
	enableColors bool,
	logLevel slog.Level,
	logFilter []string,
) slog.Handler {
	self := &PrettyPrintHandler{}

	self.out = out
	self.outLock = &sync.Mutex{}
	self.colors = enableColors
	self.logLevel = logLevel
	self.logFilter = logFilter
	self.attrs = []slog.Attr{}
	self.group = ""

	return self
}

func (self *PrettyPrintHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= self.logLevel.Level()
}

func (self *PrettyPrintHandler) Handle(ctx context.Context, record slog.Record) error {
	component, err := self.getComponent()
	assert.Assert(err == nil, "the SlogManager enforces an component attribute to exist", err)

	// Apply LOG_FILTER
	if len(self.logFilter) > 0 && !slices.Contains(self.logFilter, component) {
		return nil
	}

	logLine := LogLine{}

	logLine.Level = record.Level.String()
	logLine.Component = component
	logLine.Scope = self.tryGetScope()
	logLine.Source = slogRecordToSourceString(record)
	logLine.Message = record.Message
	logLine.Payload = slogRecordToPayload(record, self.group)

	self.outLock.Lock()
	defer self.outLock.Unlock()

	return printLogLine(self.out, self.colors, logLine)
}

func (self *PrettyPrintHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	other := *self
	other.attrs = append(slices.Clone(self.attrs), attrs...)

	return &other
}

func (self *PrettyPrintHandler) WithGroup(group string) slog.Handler {
	if group == "" {
		return self
	}

	other := *self
	if self.group == "" {
		other.group = group
	} else {
		other.group = self.group + "." + group
	}

	return &other
}

func (self *PrettyPrintHandler) getComponent() (string, error) {
	for _, attr := range self.attrs {
		if attr.Key == "component" {
			return attr.Value.String(), nil
		}
	}
	return "", fmt.Errorf("failed to find record component")
}

func (self *PrettyPrintHandler) tryGetScope() *string {
	for _, attr := range self.attrs {
		if attr.Key == "scope" {
			scope := attr.Value.String()
			return &scope
		}
	}
	return nil
}

func printLogLine(writer io.Writer, enableColor bool, logLine LogLine) error {
	payloadString := ""
	if enableColor {
		switch logLine.Level {
		case "DEBUG":
			logLine.Level = shell.Cyan + logLine.Level + shell.Reset
		case "INFO":
			logLine.Level = shell.Green + logLine.Level + shell.Reset
		case "WARN":
			logLine.Level = shell.Yellow + logLine.Level + shell.Reset
		case "ERROR":
			logLine.Level = shell.Red + logLine.Level + shell.Reset
		}
		logLine.Component = shell.Magenta + logLine.Component + shell.Reset
		if logLine.Scope != nil {
			mscope := shell.FaintYellow + *logLine.Scope + shell.Reset
			logLine.Component = logLine.Component + shell.Faint + "{" + shell.Reset + mscope + shell.Faint + "}" + shell.Reset
		}
		logLine.Source = shell.Faint + logLine.Source + shell.Reset

		if len(logLine.Payload) > 0 {
			data, err := jsoncolor.Marshal(logLine.Payload)
			if err != nil {
				return fmt.Errorf("failed to marshal payload: %w", err)
			}
			payloadString = string(data)
		}
	} else {
		if len(logLine.Payload) > 0 {
			data, err := json.Marshal(logLine.Payload)
			if err != nil {
				return fmt.Errorf("failed to marshal payload: %w", err)
			}
			payloadString = string(data)
		}
	}

	line := fmt.Sprintf("%s %s %s %s", logLine.Level, logLine.Component, logLine.Source, logLine.Message)
	if payloadString != "" {
		line = line + " " + payloadString
	}

	_, err := io.WriteString(writer, line+"\n")
	return err
}

func slogRecordToSourceString(record slog.Record) string {
	if record.PC == 0 {
		return "-"
	}
	frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

func slogRecordToPayload(record slog.Record, group string) map[string]any {
	attrs := make(map[string]any)

	record.Attrs(func(attr slog.Attr) bool {
		if group != "" {
			attr.Key = group + "." + attr.Key
		}
		errorData, ok := attr.Value.Any().(error)
		if ok {
			attrs[attr.Key] = errorData.Error()
			return true
		}
		stringerData, ok := attr.Value.Any().(fmt.Stringer)
		if ok {
			attrs[attr.Key] = stringerData.String()
			return true
		}
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	return attrs
}
