package logging

import (
	"context"
	"log/slog"
)

type SlogMultiHandler struct {
	inner []slog.Handler
}

func NewSlogMultiHandler() *SlogMultiHandler {
	self := &SlogMultiHandler{}
	self.inner = []slog.Handler{}

	return self
}

func (self *SlogMultiHandler) AddHandler(handler slog.Handler) {
	self.inner = append(self.inner, handler)
}

// Enabled if any inner handler wants the record. Each handler filters again in Handle.
func (self *SlogMultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range self.inner {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (self *SlogMultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range self.inner {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		err := handler.Handle(ctx, record.Clone())
		if err != nil {
			return err
		}
	}

	return nil
}

func (self *SlogMultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newMultiHandler := &SlogMultiHandler{}
	newMultiHandler.inner = []slog.Handler{}

	for _, handler := range self.inner {
		newMultiHandler.inner = append(newMultiHandler.inner, handler.WithAttrs(attrs))
	}

	return newMultiHandler
}

func (self *SlogMultiHandler) WithGroup(group string) slog.Handler {
	newMultiHandler := &SlogMultiHandler{}
	newMultiHandler.inner = []slog.Handler{}

	for _, handler := range self.inner {
		newMultiHandler.inner = append(newMultiHandler.inner, handler.WithGroup(group))
	}

	return newMultiHandler
}
