package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
	_ Logger = (*InquiryLogger)(nil)
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("anything else"))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
}

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithOutput(LogLevelWarn, "text", &buf)

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")
}

func TestInquiryLoggerAttachesContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewInquiryLogger(NewSlogLoggerWithOutput(LogLevelDebug, "text", &buf)).
		WithComponent("engine").
		WithSession("sess-1")

	logger.Info("inquiry advanced", "step", 2)

	out := buf.String()
	assert.Contains(t, out, "component=engine")
	assert.Contains(t, out, "session_id=sess-1")
	assert.Contains(t, out, "step=2")
}

func TestInquiryLoggerWithIsNonDestructive(t *testing.T) {
	var buf bytes.Buffer
	base := NewInquiryLogger(NewSlogLoggerWithOutput(LogLevelDebug, "text", &buf))

	scoped := base.WithSession("sess-1")
	base.Info("no session here")

	assert.NotContains(t, buf.String(), "session_id")

	buf.Reset()
	scoped.Info("scoped")
	assert.Contains(t, buf.String(), "session_id=sess-1")
}

func TestLogStep(t *testing.T) {
	var buf bytes.Buffer
	logger := NewInquiryLogger(NewSlogLoggerWithOutput(LogLevelDebug, "text", &buf))

	logger.LogStep(3, true, 5*time.Millisecond, nil)
	assert.Contains(t, buf.String(), "Step completed")

	buf.Reset()
	logger.LogStep(3, false, 5*time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), "Step failed")
	assert.Contains(t, buf.String(), "boom")
}
