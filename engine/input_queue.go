package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lixenwraith/boxpusher/core"
)

// InputOrder selects which queued input a tick consumes
type InputOrder uint8

const (
	// InputFIFO consumes the oldest input first
	InputFIFO InputOrder = iota
	// InputLIFO consumes the newest input first, reordering rapid key sequences
	InputLIFO
)

func (o InputOrder) String() string {
	if o == InputLIFO {
		return "lifo"
	}
	return "fifo"
}

// ParseInputOrder accepts "fifo" or "lifo"; empty means fifo
func ParseInputOrder(s string) (InputOrder, error) {
	switch strings.ToLower(s) {
	case "", "fifo":
		return InputFIFO, nil
	case "lifo":
		return InputLIFO, nil
	}
	return InputFIFO, fmt.Errorf("unknown input order %q", s)
}

// InputQueue buffers directional input between the collector goroutine and the tick loop
// Thread-Safety: single producer (collector), single consumer (InputSystem)
type InputQueue struct {
	mu       sync.Mutex
	keys     []core.Direction
	order    InputOrder
	capacity int
}

// NewInputQueue creates a queue; capacity <= 0 means unbounded
func NewInputQueue(order InputOrder, capacity int) *InputQueue {
	return &InputQueue{
		keys:     make([]core.Direction, 0, 8),
		order:    order,
		capacity: capacity,
	}
}

// Push enqueues a key; returns false when the queue is full and the key was dropped
func (q *InputQueue) Push(d core.Direction) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.capacity > 0 && len(q.keys) >= q.capacity {
		return false
	}
	q.keys = append(q.keys, d)
	return true
}

// Pop removes one key according to the queue order
func (q *InputQueue) Pop() (core.Direction, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.keys)
	if n == 0 {
		return core.DirNone, false
	}

	var d core.Direction
	if q.order == InputLIFO {
		d = q.keys[n-1]
		q.keys = q.keys[:n-1]
	} else {
		d = q.keys[0]
		copy(q.keys, q.keys[1:])
		q.keys = q.keys[:n-1]
	}
	return d, true
}

// SetOrder switches consumption order for subsequent pops
func (q *InputQueue) SetOrder(order InputOrder) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.order = order
}

// Order returns the current consumption order
func (q *InputQueue) Order() InputOrder {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.order
}

// Len returns the number of pending keys
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.keys)
}

// Clear drops all pending keys
func (q *InputQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = q.keys[:0]
}
