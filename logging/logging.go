/*
NAME
  logging.go

DESCRIPTION
  logging.go defines the injectable Logger interface used across this
  module at construction time, and a zap-backed default implementation with
  lumberjack log rotation.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides a small injectable logging interface, with a
// zap/lumberjack backed default implementation. It is deliberately narrow:
// this module only logs at construction time (see codec/same.NewContext),
// never on the per-sample generation hot path.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the interface this module logs through. Implementations accept
// a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warn(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
}

// noop discards everything. It is the default when no Logger is supplied.
type noop struct{}

func (noop) Debug(string, ...interface{}) {}
func (noop) Info(string, ...interface{})  {}
func (noop) Warn(string, ...interface{})  {}
func (noop) Error(string, ...interface{}) {}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noop{} }

// zapLogger adapts *zap.SugaredLogger to Logger.
type zapLogger struct {
	l *zap.SugaredLogger
}

// New returns a Logger that writes structured, rotated logs to path via
// lumberjack. maxSizeMB, maxBackups, and
// maxAgeDays configure rotation; pass zero values for lumberjack's defaults.
func New(path string, maxSizeMB, maxBackups, maxAgeDays int) Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return &zapLogger{l: zap.New(core).Sugar()}
}

func (z *zapLogger) Debug(msg string, kv ...interface{}) { z.l.Debugw(msg, kv...) }
func (z *zapLogger) Info(msg string, kv ...interface{})  { z.l.Infow(msg, kv...) }
func (z *zapLogger) Warn(msg string, kv ...interface{})  { z.l.Warnw(msg, kv...) }
func (z *zapLogger) Error(msg string, kv ...interface{}) { z.l.Errorw(msg, kv...) }
