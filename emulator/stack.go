package emulator

const (
	STACK_LIMIT = 16          // Maximum live 8-byte cells
	STACK_TOP   = 0x7fff_0000 // Initial rsp
	CELL_SIZE   = 8           // Bytes moved per push and pop
)

// Stack is the quadword memory addressed by rsp.
//
// Only cells written by Push and not yet consumed by Pop are live.
// Reading a dead cell is an underflow.
type Stack struct {
	Data map[int64]int64 // Live cells, by address.
}

// Push lowers rsp by one cell and stores value there.
func (s *Stack) Push(rsp *int64, value int64) (err error) {
	addr := *rsp - CELL_SIZE
	if _, live := s.Data[addr]; !live && s.Full() {
		err = ErrStackFull
		return
	}

	if s.Data == nil {
		s.Data = make(map[int64]int64, STACK_LIMIT)
	}
	s.Data[addr] = value
	*rsp = addr

	return
}

// Pop loads the cell at rsp and raises rsp by one cell.
func (s *Stack) Pop(rsp *int64) (value int64, err error) {
	value, ok := s.Peek(*rsp)
	if !ok {
		err = ErrStackEmpty
		return
	}

	delete(s.Data, *rsp)
	*rsp += CELL_SIZE

	return
}

// Peek returns the live cell at rsp.
func (s *Stack) Peek(rsp int64) (value int64, ok bool) {
	value, ok = s.Data[rsp]
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

func (s *Stack) Reset() {
	clear(s.Data)
}
