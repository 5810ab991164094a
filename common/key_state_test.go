package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyTracker(t *testing.T) {
	keys := NewKeyTracker()

	assert.False(t, keys.IsDown(KeyW))

	keys.Press(KeyW)
	assert.True(t, keys.IsDown(KeyW))
	assert.False(t, keys.IsDown(KeyS))

	keys.Release(KeyW)
	assert.False(t, keys.IsDown(KeyW))

	// Releasing a key that was never pressed is a no-op.
	keys.Release(KeyQ)
	assert.False(t, keys.IsDown(KeyQ))
}
