package pool

// Buffer is a ready-made poolable byte buffer. It keeps its backing array
// across claim/release cycles so pooled reuse avoids reallocation, and
// drops it only when the pool removes it for good.
type Buffer struct {
	owner Owner
	data  []byte
}

// NewBufferFactory returns a Factory producing Buffers with the given
// initial capacity.
func NewBufferFactory(capacity int) Factory[*Buffer] {
	return func() (*Buffer, error) {
		return &Buffer{data: make([]byte, 0, capacity)}, nil
	}
}

// Created stores the owning pool handle.
func (b *Buffer) Created(owner Owner) { b.owner = owner }

// Claimed resets the buffer to zero length for its new user.
func (b *Buffer) Claimed() { b.data = b.data[:0] }

// Relinquished drops the buffered content but keeps the backing array.
func (b *Buffer) Relinquished() { b.data = b.data[:0] }

// Recycled reinitializes the buffer. The previous user never released it,
// so nothing in the content can be trusted.
func (b *Buffer) Recycled() { b.data = b.data[:0] }

// Removed releases the backing array.
func (b *Buffer) Removed() {
	b.owner = nil
	b.data = nil
}

// Write appends p to the buffer, growing it as needed. It implements
// io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// Bytes returns the buffered content. The slice is valid until the next
// write or lifecycle notification.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Discard removes the buffer from its pool without waiting for the normal
// release flow. The backing array is dropped first, matching the contract
// that an instance requesting its own removal has already cleaned up.
func (b *Buffer) Discard() {
	if b.owner == nil {
		return
	}
	owner := b.owner
	b.owner = nil
	b.data = nil
	owner.DeleteFromInstance(b)
}
