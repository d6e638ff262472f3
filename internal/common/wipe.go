package common

// WipeByteArray zeroes a secret in place once it is no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
