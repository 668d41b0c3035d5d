package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Zero32 overwrites a fixed-size 32-byte secret in place.
func Zero32(b *[32]byte) {
	Zero(b[:])
}

// Zero64 overwrites a fixed-size 64-byte secret in place.
func Zero64(b *[64]byte) {
	Zero(b[:])
}
