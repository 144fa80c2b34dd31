package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the harness logger: human-readable console output for the CI
// job log plus a rotated JSON file under the artifacts directory.
func New(artifactsDir string) (*zap.Logger, error) {
	if err := os.MkdirAll(artifactsDir, 0o755); err != nil {
		return nil, err
	}

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(artifactsDir, "harness.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.TimeKey = "ts"
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), fileSink, zap.InfoLevel)

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.InfoLevel,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore)), nil
}
