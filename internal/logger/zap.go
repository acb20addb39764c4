package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

const defaultZapLevel = zapcore.InfoLevel

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// splitCore writes entries below error level to out and the rest to errOut.
func splitCore(minLevel zapcore.Level, out, errOut zapcore.WriteSyncer) zapcore.Core {
	enc := consoleEncoder()
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= minLevel && l < zapcore.ErrorLevel })
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= minLevel && l >= zapcore.ErrorLevel })
	return zapcore.NewTee(
		zapcore.NewCore(enc, out, low),
		zapcore.NewCore(enc, errOut, high),
	)
}

func newZapLogger(levelStr string) *Logger {
	core := splitCore(toZapLevel(levelStr), zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
	return &Logger{
		SugaredLogger: zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel)).
			Sugar().With("service", "machine-monitoring"),
	}
}
