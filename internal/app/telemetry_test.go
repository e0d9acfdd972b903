package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error {
	return h.err
}

func TestMultiHandler(t *testing.T) {
	t.Run("writes to every enabled handler", func(t *testing.T) {
		var debugBuf, infoBuf bytes.Buffer

		logger := slog.New(NewMultiHandler(
			slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewTextHandler(&infoBuf, nil),
		))

		logger.Debug("seat count computed", "seats", 3)

		assert.Contains(t, debugBuf.String(), "seats=3")
		assert.Empty(t, infoBuf.String())

		logger.Info("ticket purchase completed")

		assert.Contains(t, debugBuf.String(), "ticket purchase completed")
		assert.Contains(t, infoBuf.String(), "ticket purchase completed")
	})

	t.Run("keeps attributes and groups", func(t *testing.T) {
		var buf bytes.Buffer

		logger := slog.New(NewMultiHandler(slog.NewTextHandler(&buf, nil))).
			With("request_id", "abc").
			WithGroup("purchase")

		logger.Info("rejected", "reason", "limit")

		assert.Contains(t, buf.String(), "request_id=abc")
		assert.Contains(t, buf.String(), "purchase.reason=limit")
	})

	t.Run("joins handler errors", func(t *testing.T) {
		var buf bytes.Buffer
		errExport := errors.New("exporter unavailable")

		handler := NewMultiHandler(
			failingHandler{Handler: slog.NewTextHandler(&buf, nil), err: errExport},
			slog.NewTextHandler(&buf, nil),
		)

		record := slog.NewRecord(time.Now(), slog.LevelInfo, "ticket purchase completed", 0)
		err := handler.Handle(context.Background(), record)

		require.ErrorIs(t, err, errExport)
		assert.Contains(t, buf.String(), "ticket purchase completed")
	})
}

func TestInitTelemetryWithoutCollector(t *testing.T) {
	app := newTestApplication(nil, nil)

	shutdown, err := app.InitTelemetry()
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	shutdown(context.Background())
}
