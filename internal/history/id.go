package history

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewRunID generates a short random run ID with an "r" prefix.
func NewRunID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return fmt.Sprintf("r-%x", time.Now().UnixNano())
	}
	return "r-" + hex.EncodeToString(b)
}
