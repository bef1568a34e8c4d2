package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/paymentflow/internal/logging"
)

func TestNewAcceptsAllDocumentedLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := logging.New(level)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logging.New("verbose")
	require.Error(t, err)
}
