package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger: a JSON stdout core, plus a rotating
// file core when filePath is non-empty. The returned closer flushes the
// file writer; lumberjack holds the file handle and has no Sync, so the
// closer must run before process exit.
func New(level zapcore.Level, filePath string) (*zap.Logger, io.Closer, error) {
	cores := []zapcore.Core{
		zapcore.NewCore(defaultEncoder(), zapcore.Lock(zapcore.AddSync(os.Stdout)), level),
	}

	var closer io.Closer = nopCloser{}
	if filePath != "" {
		w := &lumberjack.Logger{
			Filename:  filePath,
			MaxSize:   100,
			LocalTime: true,
			Compress:  true,
		}
		cores = append(cores, zapcore.NewCore(defaultEncoder(), zapcore.AddSync(w), level))
		closer = w
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return l, closer, nil
}

// OrNop lets components accept an optional logger without nil checks at
// every call site.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func defaultEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
