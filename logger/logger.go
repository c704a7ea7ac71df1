// Package logger provides adapters for popular logger libraries to work with critbit's Logger interface.
//
// The adapters allow you to use your existing logger with critbit without writing boilerplate.
// Note that the standard library's slog.Logger already implements critbit.Logger directly.
//
// Example with zap:
//
//	import (
//	    "critbit"
//	    "critbit/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree := critbit.NewUint64(critbit.WithLogger(logger.NewZap(zapLogger)))
//	    defer tree.Destroy()
//	}
//
package logger
