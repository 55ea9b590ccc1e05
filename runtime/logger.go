package runtime

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerMu   sync.RWMutex
	loggerOnce sync.Once
)

// Logger returns the default runtime logger. It is a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the default runtime logger. nil restores the no-op
// logger. Runtimes created before the call keep the logger they were given.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// fileLog is the append-only text side channel. It is opened on first use
// and never reports errors to callers.
type fileLog struct {
	path   string
	core   zapcore.Core
	close  func()
	broken bool
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// get returns the file core, opening the file in append mode if needed.
// It returns nil when the file is disabled or could not be opened.
func (f *fileLog) get(warn *zap.Logger) zapcore.Core {
	if f == nil || f.path == "-" || f.broken {
		return nil
	}
	if f.core != nil {
		return f.core
	}
	ws, closeFn, err := zap.Open(f.path)
	if err != nil {
		f.broken = true
		warn.Warn("log file unavailable", zap.String("path", f.path), zap.Error(err))
		return nil
	}
	f.core = zapcore.NewCore(zapcore.NewConsoleEncoder(fileEncoderConfig()), ws, zapcore.DebugLevel)
	f.close = closeFn
	return f.core
}

func (f *fileLog) Close() {
	if f == nil || f.close == nil {
		return
	}
	_ = f.core.Sync()
	f.close()
	f.core = nil
	f.close = nil
}
