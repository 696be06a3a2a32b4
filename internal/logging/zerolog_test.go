package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("component", "store")

	log.Warn(context.Background(), "corrupt document")

	assert.Contains(t, buf.String(), `"component":"store"`)
}

func TestKvToMap(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want map[string]any
	}{
		{name: "empty", args: nil, want: nil},
		{name: "pair", args: []any{"a", 1}, want: map[string]any{"a": 1}},
		{name: "dangling key", args: []any{"a"}, want: map[string]any{"a": "(missing)"}},
		{name: "non-string key", args: []any{42, "x"}, want: map[string]any{"42": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kvToMap(tt.args))
		})
	}
}

func TestNewConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "error")

	log.Info(context.Background(), "ignored")
	require.Empty(t, buf.String())

	log.Error(context.Background(), "kept")
	assert.Contains(t, buf.String(), "kept")
}
