// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogInit returns a logger that writes JSON lines to fp and console lines to stdout.
func LogInit(fp io.Writer, dbg bool) *zap.Logger {
	return New(fp, os.Stdout, dbg)
}

// New tees a JSON core on file and a console core on console. Either writer may be nil.
func New(file, console io.Writer, dbg bool) *zap.Logger {
	level := zap.InfoLevel
	if dbg {
		level = zap.DebugLevel
	}

	pe := zap.NewProductionEncoderConfig()
	fileEncoder := zapcore.NewJSONEncoder(pe)
	pe.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(pe)

	var cores []zapcore.Core
	if file != nil {
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(file), level))
	}
	if console != nil {
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), level))
	}
	return zap.New(zapcore.NewTee(cores...))
}
