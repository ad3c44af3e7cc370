package ledger

import (
	"math/rand/v2"
)

// Wallet addresses are opaque digit strings of random length between 10
// and 14. There is no collision check; the address space makes collisions
// unlikely enough for a simulated backend.
const (
	addressMinLen = 10
	addressMaxLen = 14
)

// NewAddress generates a random wallet address.
func NewAddress() string {
	length := addressMinLen + rand.IntN(addressMaxLen-addressMinLen+1)
	digits := make([]byte, length)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}
	return string(digits)
}
