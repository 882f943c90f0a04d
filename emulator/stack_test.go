package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	rsp := int64(STACK_TOP)
	assert.NoError(s.Push(&rsp, 0x12345678))
	assert.NoError(s.Push(&rsp, -1))
	assert.Equal(int64(STACK_TOP-2*CELL_SIZE), rsp)

	val, ok := s.Peek(rsp)
	assert.True(ok)
	assert.Equal(int64(-1), val)
	_, ok = s.Peek(rsp - CELL_SIZE)
	assert.False(ok)

	val, err := s.Pop(&rsp)
	assert.NoError(err)
	assert.Equal(int64(-1), val)
	assert.Equal(int64(STACK_TOP-CELL_SIZE), rsp)
	assert.Equal(1, len(s.Data))

	s.Reset()
	assert.True(s.Empty())
	val, err = s.Pop(&rsp)
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(int64(0), val)
	assert.Equal(int64(STACK_TOP-CELL_SIZE), rsp)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	rsp := int64(4096)
	for range STACK_LIMIT {
		assert.NoError(s.Push(&rsp, 1))
	}
	assert.True(s.Full())

	assert.ErrorIs(s.Push(&rsp, 2), ErrStackFull)
	assert.Equal(int64(4096-STACK_LIMIT*CELL_SIZE), rsp)

	// Overwriting a live cell does not grow the stack.
	rsp += CELL_SIZE
	assert.NoError(s.Push(&rsp, 3))
	val, ok := s.Peek(rsp)
	assert.True(ok)
	assert.Equal(int64(3), val)
}
