package common

// WipeByteArray overwrites the buffer with zeroes. Used for password input.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
