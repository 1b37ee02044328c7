package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID builds a short correlation ID like "trade_3f2a1b9c0d4e".
func NewRequestID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}
