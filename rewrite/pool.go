package rewrite

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Output buffers are short-lived objects, needed for every rewrite.
// To avoid repeated allocation of growing byte slices we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

// Buffers grown beyond this capacity are not put back into the pool.
const maxPooledBufferCap = 64 * 1024

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := make([]byte, 0, 256)
			return &buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty output buffer from the pool.
func borrowBuffer() *[]byte {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		buf := make([]byte, 0, 256)
		return &buf
	}
	buf := o.(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// releaseBuffer puts a buffer back into the pool.
func releaseBuffer(buf *[]byte) {
	if cap(*buf) > maxPooledBufferCap {
		_ = globalBufferPool.opool.InvalidateObject(globalBufferPool.ctx, buf)
		return
	}
	*buf = (*buf)[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
