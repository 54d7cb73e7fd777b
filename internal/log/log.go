// Package log is a thin fiber-aware facade over zap. Handlers log
// structured actions; request metadata is attached automatically.
package log

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var base = zap.NewNop()

// Init wires the process logger: JSON to stdout, plus a rotated file sink
// when logFile is non-empty.
func Init(logFile string) {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zapcore.InfoLevel),
	}
	if logFile != "" {
		sink := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, // MiB
			MaxBackups: 5,
			MaxAge:     28, // days
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(sink), zapcore.InfoLevel))
	}
	base = zap.New(zapcore.NewTee(cores...))
}

func Sync() { _ = base.Sync() }

func fromCtx(c *fiber.Ctx, action string, err error, fields map[string]any) []zap.Field {
	fs := []zap.Field{zap.String("action", action)}
	if c != nil {
		fs = append(fs,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			fs = append(fs, zap.String("req_id", rid))
		}
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	if len(fields) > 0 {
		fs = append(fs, zap.Any("fields", fields))
	}
	return fs
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, fromCtx(c, action, nil, fields)...)
}

// Audit records business events worth keeping (orders placed, prefs set).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, append(fromCtx(c, action, nil, fields), zap.Bool("audit", true))...)
}

// Security records rejected or suspicious input.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	base.Warn(action, fromCtx(c, action, nil, fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	base.Error(action, fromCtx(c, action, err, fields)...)
}
