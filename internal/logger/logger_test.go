package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "go-humans-server")

	l.Info().Msg("human created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "go-humans-server", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "human created", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLogger_DebugIsEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "go-humans-server")

	l.Debug().Msg("debug line")

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_Stdout(t *testing.T) {
	require.NotNil(t, NewLogger("go-humans-server"))
}

func TestNewClientLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantLevel zerolog.Level
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantLevel: zerolog.WarnLevel, wantDebug: false},
		{name: "verbose", verbose: true, wantLevel: zerolog.DebugLevel, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newClientLogger(&buf, "go-humans-client", tt.verbose)

			l.Debug().Msg("sending request")
			l.Warn().Msg("server returned 404")

			assert.Equal(t, tt.wantLevel, l.GetLevel())
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("sending request")))
			assert.Contains(t, buf.String(), "server returned 404")
		})
	}
}

func TestNewClientLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newClientLogger(&buf, "go-humans-client", false)

	l.Error().Str("command", "get").Msg("request failed")

	out := buf.String()
	assert.NotEqual(t, byte('{'), out[0], "console output must not be JSON")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "command=get")
	assert.Contains(t, out, "role=go-humans-client")
}

func TestNewClientLogger_Stderr(t *testing.T) {
	l := NewClientLogger("go-humans-client", true)

	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "go-humans-server")

	child := parent.With("trace_id", "abc-123")
	child.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "go-humans-server", entry["role"])

	buf.Reset()
	parent.Info().Msg("parent")

	entry = decodeEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id", "parent must stay untouched")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "go-humans-server").With("trace_id", "ctx-id").WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "ctx-id", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLogger(&buf, "go-humans-server").With("trace_id", "req-id").WithContext(context.Background())
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/humans", nil)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-id", decodeEntry(t, &buf)["trace_id"])
}
