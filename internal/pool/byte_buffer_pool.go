// Package pool provides pooled byte buffers for the encoder's staging and
// assembly passes.
//
// Encoding a document stages child encodings in a scratch buffer before each
// container's header is written in front of them; the scratch space is
// reused across Encode calls via sync.Pool so steady-state encoding does not
// allocate staging memory.
package pool

import "sync"

// DocBufferDefaultSize is the default capacity of a ByteBuffer obtained from
// the pool; DocBufferMaxThreshold is the largest buffer the pool retains.
const (
	DocBufferDefaultSize  = 1024 * 16  // 16KiB
	DocBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a length-tracked byte slice for staged encoding. The
// encoder appends through B directly and uses ExtendOrGrow to open header
// gaps; the buffer only exists to make those patterns reuse one allocation.
type ByteBuffer struct {
	// B is the underlying byte slice, exposed so callers can append to it
	// without extra indirection.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping the allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Extend lengthens the buffer by n bytes if capacity allows, reporting
// whether it did. The new bytes hold whatever the slice held before;
// callers overwrite them.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow lengthens the buffer by n bytes, reallocating when capacity
// runs out. This is the encoder's header-gap primitive: after staging a
// container body it extends by the header length and shifts the body right.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures capacity for requiredBytes more bytes. Small buffers grow by
// a full DocBufferDefaultSize step; buffers past 4 steps grow by 25% so a
// large document does not reallocate on every container.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DocBufferDefaultSize
	if cap(bb.B) > 4*DocBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers, discarding any that grew past its
// retention threshold so one oversized document does not pin its scratch
// memory forever.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity and retaining returned buffers up to maxThreshold capacity
// (zero disables the threshold).
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var docDefaultPool = NewByteBufferPool(DocBufferDefaultSize, DocBufferMaxThreshold)

// GetDocBuffer retrieves a scratch buffer from the shared document pool.
func GetDocBuffer() *ByteBuffer {
	return docDefaultPool.Get()
}

// PutDocBuffer returns a scratch buffer to the shared document pool.
func PutDocBuffer(bb *ByteBuffer) {
	docDefaultPool.Put(bb)
}
