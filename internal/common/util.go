package common

// WipeByteArray overwrites the contents of buf with zeros. It is used to
// clear password buffers once they are no longer needed. Safe on nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
