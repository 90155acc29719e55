package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSentry_DisabledWithoutDSN(t *testing.T) {
	flush := InitSentry(SentryConfig{})
	require.NotNil(t, flush)
	assert.NotPanics(t, flush)
	assert.NotPanics(t, func() {
		CaptureError(context.Background(), errors.New("boom"))
		CaptureError(context.Background(), nil)
	})
}

func TestComponent(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("advisory")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"advisory"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
