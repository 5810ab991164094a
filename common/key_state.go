package common

import "sync"

// KeyTracker records which keys are currently held. Window key callbacks feed
// it and per-frame control code queries it.
type KeyTracker struct {
	mu   sync.RWMutex
	down map[uint32]bool
}

// NewKeyTracker creates an empty KeyTracker.
//
// Returns:
//   - *KeyTracker: the tracker
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{down: make(map[uint32]bool)}
}

// Press marks a key as held.
//
// Parameters:
//   - key: the virtual key code
func (k *KeyTracker) Press(key uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[key] = true
}

// Release marks a key as no longer held.
//
// Parameters:
//   - key: the virtual key code
func (k *KeyTracker) Release(key uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, key)
}

// IsDown reports whether a key is currently held.
//
// Parameters:
//   - key: the virtual key code
//
// Returns:
//   - bool: true if the key is held
func (k *KeyTracker) IsDown(key uint32) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.down[key]
}
