package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerLifecycle(t *testing.T) {
	p, err := NewPoller(func() {})
	require.NoError(t, err)

	entries := p.cron.Entries()
	require.Len(t, entries, 1)

	p.Start()
	p.Stop()
}

func TestPollerStopWithoutStart(t *testing.T) {
	p, err := NewPoller(func() {})
	require.NoError(t, err)

	assert.NotPanics(t, func() { p.Stop() })
}
