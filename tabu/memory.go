package tabu

// Memory is a bounded FIFO of recently committed pins.
type Memory struct {
	buf  []int
	head int // slot of the oldest entry
	n    int
}

// NewMemory returns an empty memory holding at most capacity pins.
// A non-positive capacity yields a memory that never holds anything.
func NewMemory(capacity int) *Memory {
	if capacity < 0 {
		capacity = 0
	}

	return &Memory{buf: make([]int, capacity)}
}

// Push appends pin, evicting the oldest entry when full.
func (m *Memory) Push(pin int) {
	c := len(m.buf)
	if c == 0 {
		return
	}
	if m.n < c {
		m.buf[(m.head+m.n)%c] = pin
		m.n++
		return
	}
	m.buf[m.head] = pin
	m.head = (m.head + 1) % c
}

// Contains reports whether pin is currently tabu.
//
// Complexity: O(Cap()).
func (m *Memory) Contains(pin int) bool {
	c := len(m.buf)
	var i int
	for i = 0; i < m.n; i++ {
		if m.buf[(m.head+i)%c] == pin {
			return true
		}
	}

	return false
}

// Len returns the number of held pins.
func (m *Memory) Len() int { return m.n }

// Cap returns the capacity.
func (m *Memory) Cap() int { return len(m.buf) }

// Snapshot returns the held pins, oldest first.
func (m *Memory) Snapshot() []int {
	out := make([]int, m.n)
	c := len(m.buf)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = m.buf[(m.head+i)%c]
	}

	return out
}
