package codectk

import "runtime"

// zeroBuf clears a caller-supplied output buffer before a codec populates
// it, so that any early-return error path never leaves partial garbage
// visible to the caller. Every Encode/Decode entry point calls this before
// writing a single bit.
func zeroBuf(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
