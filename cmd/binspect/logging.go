package main

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setupLogger installs the global zap logger. Everything goes to stderr
// so log lines never mix into the dump on stdout.
func setupLogger(debug bool) {
	encConf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "file",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	lvl := zap.NewAtomicLevel()
	lvl.SetLevel(zap.WarnLevel)
	if debug {
		lvl.SetLevel(zap.DebugLevel)
	}

	zc := zap.Config{
		Level:             lvl,
		DisableCaller:     false,
		DisableStacktrace: false,
		Encoding:          "console",
		EncoderConfig:     encConf,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := zc.Build()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to set up logging: %v\n", err)
		return
	}

	zap.ReplaceGlobals(log.With(
		zap.String("invocation", xid.New().String()),
	))
}
