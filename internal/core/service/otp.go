package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// generateOTP returns a 6-digit numeric one-time code, zero-padded.
func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
