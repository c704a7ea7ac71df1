package main

import (
	"github.com/rs/zerolog"

	"critbit"
)

// zerologAdapter wraps a zerolog.Logger to implement critbit.Logger, the
// demo binary's own flavor of the adapters in the logger subpackage (kept
// out of that subpackage since zerolog is a demo-only dependency).
type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter(l zerolog.Logger) critbit.Logger {
	return &zerologAdapter{logger: l}
}

func (z *zerologAdapter) logw(evt *zerolog.Event, msg string, args ...any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		evt = evt.Interface(key, args[i+1])
	}
	evt.Msg(msg)
}

func (z *zerologAdapter) Error(msg string, args ...any) {
	z.logw(z.logger.Error(), msg, args...)
}

func (z *zerologAdapter) Warn(msg string, args ...any) {
	z.logw(z.logger.Warn(), msg, args...)
}

func (z *zerologAdapter) Info(msg string, args ...any) {
	z.logw(z.logger.Info(), msg, args...)
}
