// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger on top of the production encoder
// settings, writing to w. verbose lowers the level from INFO to DEBUG.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	zapcfg := zap.NewProductionConfig()
	zapcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapcfg.Encoding = "console"
	zapcfg.Level = level

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcfg.EncoderConfig),
		zapcore.AddSync(w),
		zapcfg.Level,
	)

	return zap.New(core)
}
