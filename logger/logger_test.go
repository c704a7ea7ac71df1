package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"critbit"
)

func TestZapAdapterImplementsLoggerAndWrites(t *testing.T) {
	var buf bytes.Buffer
	enc := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(&buf), zapcore.DebugLevel)
	zl := zap.New(core)

	var l critbit.Logger = NewZap(zl)
	l.Info("inserted", "key", "abc")
	l.Warn("retrying split")
	l.Error("allocation failed", "err", "oom")

	assert.Contains(t, buf.String(), "inserted")
	assert.Contains(t, buf.String(), "allocation failed")
}

func TestLogrusAdapterImplementsLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := logrus.New()
	lg.SetOutput(&buf)
	lg.SetLevel(logrus.DebugLevel)

	var l critbit.Logger = NewLogrus(lg)
	l.Info("inserted", "key", "abc")
	l.Warn("retrying split")
	l.Error("allocation failed", "err", "oom")

	assert.Contains(t, buf.String(), "inserted")
	assert.Contains(t, buf.String(), "allocation failed")
}

func TestArgsToFieldsIgnoresOddTrailingArg(t *testing.T) {
	fields := argsToFields([]any{"a", 1, "b", 2, "dangling"})
	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, 2, fields["b"])
	assert.Len(t, fields, 2)
}
