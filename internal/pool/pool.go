package pool

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse.
// Oversized buffers are dropped so one long post does not pin memory.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > 16*bp.size {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// CaserPool hands out lowercasing casers for a fixed language.
// A cases.Caser keeps internal state and must not be used by two goroutines
// at once, so each call borrows its own.
type CaserPool struct {
	pool sync.Pool
	tag  language.Tag
}

// NewLowerCaserPool creates a pool of lowercasers for the given language.
func NewLowerCaserPool(tag language.Tag) *CaserPool {
	return &CaserPool{
		pool: sync.Pool{
			New: func() interface{} {
				c := cases.Lower(tag)
				return &c
			},
		},
		tag: tag,
	}
}

// Get retrieves a caser from the pool
func (cp *CaserPool) Get() *cases.Caser {
	return cp.pool.Get().(*cases.Caser)
}

// Put resets the caser and returns it to the pool
func (cp *CaserPool) Put(c *cases.Caser) {
	c.Reset()
	cp.pool.Put(c)
}

// Language returns the language the pooled casers apply.
func (cp *CaserPool) Language() language.Tag {
	return cp.tag
}
