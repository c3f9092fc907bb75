package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(LevelInfo)

	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, c := range cases {
		SetLevel(c.in)
		assert.Equal(t, c.expected, zapLevel.Level(), "SetLevel(%q)", c.in)
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		assert.True(t, ValidLevel(l), l)
	}
	assert.False(t, ValidLevel("trace"))
	assert.False(t, ValidLevel(""))
}

func TestNewFollowsLevel(t *testing.T) {
	defer SetLevel(LevelInfo)

	var buf bytes.Buffer
	l := New(&buf)

	SetLevel(LevelWarn)
	l.Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warnf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "WARN")
}

func TestPackageFuncsUseDefault(t *testing.T) {
	var recorded []string
	old := Default
	Default = &stubLogger{record: func(s string) { recorded = append(recorded, s) }}
	defer func() { Default = old }()

	Debug("a")
	Debugf("b")
	Info("c")
	Infof("d")
	Warn("e")
	Warnf("f")
	Error("g")
	Errorf("h")

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, recorded)
}

// stubLogger records the first argument or format string of each call.
type stubLogger struct {
	record func(string)
}

func (s *stubLogger) first(args []any) {
	if len(args) > 0 {
		if v, ok := args[0].(string); ok {
			s.record(v)
		}
	}
}

func (s *stubLogger) Debug(args ...any)                 { s.first(args) }
func (s *stubLogger) Debugf(format string, args ...any) { s.record(format) }
func (s *stubLogger) Info(args ...any)                  { s.first(args) }
func (s *stubLogger) Infof(format string, args ...any)  { s.record(format) }
func (s *stubLogger) Warn(args ...any)                  { s.first(args) }
func (s *stubLogger) Warnf(format string, args ...any)  { s.record(format) }
func (s *stubLogger) Error(args ...any)                 { s.first(args) }
func (s *stubLogger) Errorf(format string, args ...any) { s.record(format) }
func (s *stubLogger) Fatal(args ...any)                 {}
func (s *stubLogger) Fatalf(format string, args ...any) {}
