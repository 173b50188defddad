package requestid_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/adanyl0v/taskgate/internal/requestid"
)

func TestFromContext(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))

	ctx := requestid.NewContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}

func TestNew_Unique(t *testing.T) {
	assert.NotEqual(t, requestid.New(), requestid.New())
}

func TestHook(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(requestid.Hook())

	logger.Info().Ctx(requestid.NewContext(context.Background(), "abc")).Msg("with id")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	logger.Info().Ctx(context.Background()).Msg("without id")
	assert.NotContains(t, buf.String(), "request_id")

	buf.Reset()
	logger.Info().Msg("no context")
	assert.NotContains(t, buf.String(), "request_id")
}
