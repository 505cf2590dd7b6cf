package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tfroot/internal/adapters/logger"
	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name: "debug when verbose",
			log: func(l *logger.Logger) {
				l.SetVerbose(true)
				l.Debug("probing /repo")
			},
			goldenName: "debug_verbose",
		},
		{
			name:       "error chain",
			log:        func(l *logger.Logger) { l.Error(zerr.Wrap(errors.New("permission denied"), "failed to canonicalize path")) },
			goldenName: "error_chain",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("boom")) },
			goldenName: "error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(false)
	lg.Debug("still hidden")
	assert.Empty(t, buf.String())
}

func TestLogger_NilError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Configure(t *testing.T) {
	t.Run("level filters info", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Configure(domain.LogConfig{Level: "warn"})

		lg.Info("dropped")
		lg.Warn("kept")
		assert.Equal(t, "! kept\n", buf.String())
	})

	t.Run("json output", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Configure(domain.LogConfig{Level: "debug", JSON: true})

		lg.Debug("lookup")
		lg.Error(errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, `"level":"DEBUG"`)
		assert.Contains(t, out, `"msg":"lookup"`)
		assert.Contains(t, out, `"msg":"operation failed"`)
		assert.Contains(t, out, `"error":"boom"`)
	})

	t.Run("output survives mode switch", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetJSON(true)
		lg.SetJSON(false)

		lg.Info("back to pretty")
		assert.Equal(t, "back to pretty\n", buf.String())
	})
}

func TestFormatErrorEntries(t *testing.T) {
	assert.Empty(t, logger.FormatErrorEntries(nil))
	assert.Equal(t, "Error: single", logger.FormatErrorEntries([]string{"single"}))

	got := logger.FormatErrorEntries([]string{"top\ndetail", "middle", "root\nmore"})
	want := "Error: top\n" +
		"       detail\n" +
		"\n" +
		"  Caused by:\n" +
		"    → middle\n" +
		"    → root\n" +
		"      more"
	assert.Equal(t, want, got)
}

func TestCollectErrorEntries(t *testing.T) {
	plain := errors.New("plain")
	assert.Equal(t, []string{"plain"}, logger.CollectErrorEntries(plain))

	wrapped := zerr.Wrap(plain, "outer")
	assert.Equal(t, []string{"outer", "plain"}, logger.CollectErrorEntries(wrapped))
}
