package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", "json")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("op", "test").Info("hello")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "test", line["op"])
}

func TestNewUnknownLevel(t *testing.T) {
	logger := NewWithWriter(&bytes.Buffer{}, "chatty", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	logger := NewWithWriter(&bytes.Buffer{}, "info", "text")
	entry := logger.WithField("request-id", "abc")

	ctx := WithLogger(context.Background(), entry)
	ctx = WithRequestID(ctx, "abc")
	assert.Same(t, entry, FromContext(ctx, nil))
	assert.Equal(t, "abc", RequestID(ctx))

	fallback := FromContext(context.Background(), logger)
	assert.Same(t, logger, fallback.Logger)
	assert.Empty(t, RequestID(context.Background()))
}
