package pipeline

import "go.uber.org/zap"

// Events receives structured notifications from a running pipeline.
// Emission never affects control flow; the core logic is testable with
// NopEvents and no console capture.
type Events interface {
	ItemStarted(index, total int, preview string)
	RetryScheduled(attempt, maxAttempts int, reason string)
	ItemSucceeded(index int)
	ItemSkipped(index int, reason string)
	ItemFailed(index int, reason string)
	Flushed(destination string, rows int)
}

// ZapEvents emits pipeline events through a zap logger.
type ZapEvents struct {
	log *zap.Logger
}

// NewZapEvents wraps log as an event emitter.
func NewZapEvents(log *zap.Logger) *ZapEvents {
	return &ZapEvents{log: log}
}

func (e *ZapEvents) ItemStarted(index, total int, preview string) {
	e.log.Info("item started",
		zap.Int("index", index),
		zap.Int("total", total),
		zap.String("preview", preview))
}

func (e *ZapEvents) RetryScheduled(attempt, maxAttempts int, reason string) {
	e.log.Warn("retry scheduled",
		zap.Int("attempt", attempt),
		zap.Int("max_attempts", maxAttempts),
		zap.String("reason", reason))
}

func (e *ZapEvents) ItemSucceeded(index int) {
	e.log.Info("item succeeded", zap.Int("index", index))
}

func (e *ZapEvents) ItemSkipped(index int, reason string) {
	e.log.Info("item skipped", zap.Int("index", index), zap.String("reason", reason))
}

func (e *ZapEvents) ItemFailed(index int, reason string) {
	e.log.Warn("item failed", zap.Int("index", index), zap.String("reason", reason))
}

func (e *ZapEvents) Flushed(destination string, rows int) {
	e.log.Info("records flushed", zap.String("destination", destination), zap.Int("rows", rows))
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) ItemStarted(int, int, string)    {}
func (NopEvents) RetryScheduled(int, int, string) {}
func (NopEvents) ItemSucceeded(int)               {}
func (NopEvents) ItemSkipped(int, string)         {}
func (NopEvents) ItemFailed(int, string)          {}
func (NopEvents) Flushed(string, int)             {}
