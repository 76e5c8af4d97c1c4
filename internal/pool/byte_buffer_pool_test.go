package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = bb.WriteString("abc")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.Equal(t, []byte{1, 2, 3, 'a', 'b', 'c'}, bb.Bytes())
	require.Equal(t, 6, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.Write(make([]byte, 64))
	require.NoError(t, err)

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap(), "reset keeps the allocation")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.WriteString("payload")
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	_, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len(), "pooled buffer comes back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	_, err := bb.Write(make([]byte, 256))
	require.NoError(t, err)
	p.Put(bb)

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 64, "oversized buffer is not retained")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 64)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestGetPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutPayloadBuffer(bb)
}
