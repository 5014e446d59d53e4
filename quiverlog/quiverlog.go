// Package quiverlog is a thin structured-logging facade over zap, used
// only outside THE CORE (the cmd/quiverbench driver): the core packages
// (mutation, evaluator, bandmatrix, recursor) never log.
package quiverlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.SugaredLogger with the handful of fields
// cmd/quiverbench needs to trace, so call sites never import zap
// directly.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a Logger that writes human-readable console output
// (zap's development configuration) at the given level ("debug", "info", "warn", "error"); an
// unrecognized level falls back to "info".
func New(level string) (*Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

// Sync flushes any buffered log entries; callers should defer it.
func (l *Logger) Sync() error { return l.s.Sync() }

// MutationTrace logs a single accept/reject decision made while
// refining a template, e.g. during a greedy mutation search outer loop.
func (l *Logger) MutationTrace(mutation string, deltaScore float64, accepted bool) {
	l.s.Infow("mutation evaluated", "mutation", mutation, "deltaScore", deltaScore, "accepted", accepted)
}

// AlphaBetaRefillWarning logs that FillAlphaBeta needed more than one
// refill pass to reconcile, which is worth a human noticing even when
// it eventually converges.
func (l *Logger) AlphaBetaRefillWarning(attempt int, diff float64) {
	l.s.Warnw("alpha/beta reconciliation needed a refill", "attempt", attempt, "diff", diff)
}

// Error logs a terminal error before the driver exits.
func (l *Logger) Error(msg string, err error) {
	l.s.Errorw(msg, "error", err)
}
