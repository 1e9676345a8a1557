package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing records at level and above to
// out. Warnings and errors additionally go to errOut when it is not nil.
func NewLogger(out, errOut io.Writer, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})

	if errOut == nil {
		return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(out), lvl)).Sugar(), nil
	}

	outLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l < zapcore.WarnLevel
	})
	errLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l >= zapcore.WarnLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(out), outLevels),
		zapcore.NewCore(encoder, zapcore.AddSync(errOut), errLevels),
	)
	return zap.New(core).Sugar(), nil
}
