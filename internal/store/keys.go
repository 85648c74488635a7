package store

import (
	"strings"
	"sync"
)

// Key prefixes, one per household document.
const (
	profilePrefix  = "profile:"
	schedulePrefix = "schedule:"
	howtoPrefix    = "howto:"
)

// Prefixes lists every household key prefix.
var Prefixes = []string{profilePrefix, schedulePrefix, howtoPrefix}

// keyPool provides reusable byte slices for building database keys.
var keyPool = sync.Pool{
	New: func() any {
		// Prefix (6-9 bytes) plus a prefixed NanoID household id.
		return make([]byte, 0, 64)
	},
}

// buildKey constructs a database key from prefix and household id using a
// pooled buffer. Callers MUST call releaseKey once the transaction using the
// key has finished.
func buildKey(prefix, householdID string) []byte {
	buf, _ := keyPool.Get().([]byte)
	buf = buf[:0]
	buf = append(buf, prefix...)
	buf = append(buf, householdID...)
	return buf
}

// releaseKey returns a key buffer to the pool for reuse.
func releaseKey(key []byte) {
	if cap(key) <= 256 {
		keyPool.Put(key[:0])
	}
}

// splitKey returns the prefix and household id of a stored key.
func splitKey(key string) (prefix, householdID string, ok bool) {
	for _, p := range Prefixes {
		if id, found := strings.CutPrefix(key, p); found && id != "" {
			return p, id, true
		}
	}
	return "", "", false
}

// CheckHousehold rejects household ids that cannot form a key.
func CheckHousehold(householdID string) error {
	if householdID == "" {
		return ErrInvalidInput.WithMessage("household id is required")
	}
	if strings.ContainsAny(householdID, ":/") {
		return ErrInvalidInput.WithMessage("household id contains reserved characters")
	}
	return nil
}
