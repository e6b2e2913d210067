// Package bytebuf implements the §6 byte-buffer collaborator: an opaque
// bounded mutable byte slice with a known length and scoped release. Every
// encoded output of this core is delivered through a Buffer; every decoded
// input is read from one. Generalizes the scoped-resource discipline the
// teacher applies to file handles (ntru/keys/private_key.go's
// defer f.Close()) to an in-memory secret buffer.
package bytebuf

// Buffer is a bounded mutable byte slice with explicit, deterministic
// release. Zero scrubs the contents before the buffer is dropped, which
// spec.md §7 asks implementers to add for cryptographic secrets even though
// the original source does not do so uniformly.
type Buffer struct {
	data     []byte
	released bool
}

// New allocates a Buffer of the given length, zero-initialized.
func New(length int) *Buffer {
	return &Buffer{data: make([]byte, length)}
}

// Wrap adopts an existing slice as a Buffer without copying. The caller
// must not retain other references to b.
func Wrap(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Len returns the buffer's length.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the live backing slice. Mutations are visible to the
// Buffer; callers that need an independent copy should copy explicitly.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Zero overwrites every byte with 0, scrubbing secret material before
// Release or before the Buffer is dropped by the garbage collector.
func (b *Buffer) Zero() {
	if b == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
}

// Release marks the buffer as no longer owned by its acquirer. Release is
// idempotent; calling it twice is not an error.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.data = nil
}
